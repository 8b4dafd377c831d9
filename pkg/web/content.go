package web

// AppName is the product name shown across the site.
const AppName = "Medireon"

const contactEmail = "medireon.hms@gmail.com"

type role struct {
	Title  string
	Image  string
	Points []string
}

var roles = []role{
	{
		Title: "For Patients",
		Image: "/static/img/patient.jpg",
		Points: []string{
			"Quick online registration & login",
			"Book or cancel appointments instantly",
			"Secure online payments",
			"Access invoices & medical reports",
			"Manage personal and medical information",
			"Change password anytime",
		},
	},
	{
		Title: "For Doctors",
		Image: "/static/img/doctor.jpg",
		Points: []string{
			"View today's appointments",
			"Reschedule or complete appointments",
			"Access patient history",
			"Update profile and avatar",
		},
	},
	{
		Title: "For Receptionists",
		Image: "/static/img/receptionist.jpg",
		Points: []string{
			"Create and manage patient profiles",
			"View and schedule daily appointments",
			"Manage doctor & patient lists",
			"Handle emergency & bed bookings",
			"Generate bills for all services",
		},
	},
	{
		Title: "For Pharmacists",
		Image: "/static/img/pharmacist.jpg",
		Points: []string{
			"Manage full medicine inventory",
			"Sell and update medicine stock",
			"Access patient lists",
			"Manage profile and security",
		},
	},
	{
		Title: "For Lab Technicians",
		Image: "/static/img/lab-technician.jpg",
		Points: []string{
			"Manage test bookings",
			"Upload diagnostic reports",
			"Maintain patient lists",
			"Update profile and avatar",
		},
	},
	{
		Title: "For Admins",
		Image: "/static/img/admin.jpg",
		Points: []string{
			"View smart dashboards & reports",
			"Create & manage all roles",
			"Full control over appointments, beds, staff, and more",
		},
	},
}

// RoleCount is the number of slides in the features carousel.
func RoleCount() int { return len(roles) }

type titled struct {
	Title string
	Body  string
}

var reasons = []titled{
	{"All-in-One Dashboard", "Control every aspect of your hospital from a single platform."},
	{"Role-Based Access", "Custom interfaces for each user type for maximum efficiency."},
	{"Scalable & Secure", "Designed to scale with your facility while keeping patient data protected."},
	{"Cloud-Powered", "No installations needed. Access from anywhere, anytime."},
	{"Emergency Ready", "Quick emergency booking and bed allocation system."},
	{"Modern UI", "Intuitive design with a seamless user experience."},
	{"24/7 Support", "We're here whenever you need help."},
}

var benefits = []titled{
	{"Improved Efficiency", "Automate repetitive tasks and streamline workflows, reducing administrative burden by up to 60% and allowing staff to focus on patient care."},
	{"Enhanced Data Security", "Role-based access and secure storage keep patient records protected at every step."},
	{"Cost Reduction", "Decrease operational costs by 30% through optimized resource allocation, reduced paperwork, and minimized billing errors and claim rejections."},
	{"Better Patient Experience", "Online booking, instant reports and secure payments make every visit smoother."},
	{"Data-Driven Insights", "Dashboards and analytics surface trends so you can plan staffing and resources ahead."},
	{"Seamless Integration", "Pharmacy, lab, billing and bed management work together in one system."},
}

var faqs = []titled{
	{
		"Do you offer a free trial period?",
		"We don't have any free plan, but we offer a 50% return if you're not satisfied with the service within the first month.",
	},
	{
		"Can I upgrade or downgrade my plan later?",
		"Both are possible, but we encourage you to upgrade or stick with your current plan for the best experience.",
	},
	{
		"Is there a limit on the number of patients we can manage?",
		"There's no fixed upper limit on the number of patients you can manage. Our system is designed to scale with your needs, whether you're a small clinic or a large hospital. If your usage grows significantly we may apply additional charges to ensure optimal performance and dedicated resources.",
	},
	{
		"What kind of support do you offer?",
		"We provide full system maintenance. In case of any crashes, we resolve them efficiently.",
	},
}

// FAQCount is the number of questions in the FAQ accordion.
func FAQCount() int { return len(faqs) }

type policySection struct {
	Title  string
	Intro  string
	Points []string
	Outro  string
}

var policySections = []policySection{
	{
		Title: "Information We Collect",
		Intro: "We collect personal data that you provide directly, including:",
		Points: []string{
			"Name, email address, phone number",
			"Hospital or clinic name",
			"Payment and billing details",
		},
		Outro: "If you are a patient or medical staff, we may collect protected health information (PHI) as part of your use of " + AppName + ", in accordance with HIPAA regulations.",
	},
	{
		Title: "How We Use Your Information",
		Intro: "We use the collected information to:",
		Points: []string{
			"Provide and improve our services",
			"Manage user accounts and roles",
			"Process payments",
			"Communicate with users regarding updates and support",
			"Ensure security and prevent fraud",
		},
	},
	{
		Title: "Data Security",
		Intro: "We implement robust technical and organizational measures to protect your data, including:",
		Points: []string{
			"Role-based access controls",
			"Secure data storage",
			"Regular vulnerability assessments",
		},
		Outro: "We are HIPAA-compliant and follow industry practice to protect your health data.",
	},
	{
		Title: "Data Sharing and Disclosure",
		Intro: "We do not sell, rent, or trade your information. We may share data:",
		Points: []string{
			"With authorized healthcare professionals within your organization",
			"With third-party services (e.g., payment gateways) necessary to operate our platform",
			"When required by law or to enforce legal rights",
		},
		Outro: "All third-party services are contractually obligated to protect your data.",
	},
	{
		Title: "Your Rights",
		Intro: "You have the right to:",
		Points: []string{
			"Access, correct, or delete your personal data",
			"Request data portability",
			"Withdraw consent at any time",
		},
		Outro: "If you are part of a healthcare organization, contact your administrator to manage your data preferences.",
	},
	{
		Title: "Contact Us",
		Intro: "Questions about this policy can be sent to " + contactEmail + ".",
	},
}

// PolicyCount is the number of sections in the privacy policy accordion.
func PolicyCount() int { return len(policySections) }
