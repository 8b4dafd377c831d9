package models

import (
	"fmt"
	"time"
)

// DemoDateLayout is the wire format of DemoRequest.Date.
const DemoDateLayout = "2006-01-02"

// DemoSlots lists the hourly slots offered by the demo scheduler, from
// firstHour to lastHour inclusive, labelled in zone ("11 AM IST").
func DemoSlots(firstHour, lastHour int, zone string) []string {
	slots := make([]string, 0, lastHour-firstHour+1)
	for hour := firstHour; hour <= lastHour; hour++ {
		var label string
		switch {
		case hour == 0:
			label = "12 AM"
		case hour < 12:
			label = fmt.Sprintf("%d AM", hour)
		case hour == 12:
			label = "12 PM"
		default:
			label = fmt.Sprintf("%d PM", hour-12)
		}
		slots = append(slots, label+" "+zone)
	}
	return slots
}

// MinDemoDate is the earliest date the scheduler offers: tomorrow in loc.
func MinDemoDate(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc).Format(DemoDateLayout)
}
