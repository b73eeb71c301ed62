package i18n

var copyEN = SiteCopy{
	Metadata: MetadataCopy{
		Title:       "Digital Product Studio in Copenhagen",
		Description: "Designer + developer duo delivering high-converting websites, apps, and full-stack platforms from Copenhagen.",
	},
	Nav: NavCopy{
		HowWeWork: "Our process",
		Projects:  "Projects",
		FAQ:       "FAQ",
		Login:     "Login",
		Book:      "Book a call",
		Language:  "Language",
	},
	Hero: HeroCopy{
		Badge:        "Copenhagen product studio",
		Title:        "From idea to shipped product, fast and documented.",
		Description:  "We are a designer + developer duo building modern web and app experiences grounded in real user behavior and robust code.",
		PrimaryCTA:   "Book a meeting",
		SecondaryCTA: "See how we work",
		TrustLine:    "Based in Copenhagen, Denmark",
	},
	Services: ServicesCopy{
		Title:       "What we build",
		Description: "End-to-end product delivery with design precision and production-grade engineering.",
		Items: []ServiceItem{
			{
				Title:       "Web Experiences",
				Description: "Marketing sites and product platforms that load fast and convert.",
				Points:      []string{"Next.js", "SEO-first", "Conversion-focused"},
			},
			{
				Title:       "Mobile Apps",
				Description: "Native-feeling mobile products designed around real user flows.",
				Points:      []string{"iOS + Android", "Smooth UX", "Analytics-ready"},
			},
			{
				Title:       "Product Design",
				Description: "From rough concept to testable prototype and polished interface.",
				Points:      []string{"UX research", "Design systems", "Rapid iteration"},
			},
			{
				Title:       "Full-stack Systems",
				Description: "Backends, dashboards, payments, communities, and data models.",
				Points:      []string{"APIs", "Automations", "Secure architecture"},
			},
		},
	},
	Comparison: ComparisonCopy{
		Title:       "Bad vs good delivery",
		Description: "The difference between expensive rework and confident release days.",
		BadTitle:    "Your average project",
		BadPoints: []string{
			"Design and code drift apart",
			"Hardcoded hacks block future features",
			"No documentation for decisions",
			"Slow pages and fragile integrations",
		},
		GoodTitle: "Stubio approach",
		GoodPoints: []string{
			"Design and engineering move as one team",
			"Clean architecture that scales with the roadmap",
			"Transparent documentation and weekly checkpoints",
			"Fast, observable, maintainable releases",
		},
	},
	Process: ProcessCopy{
		Title:       "How we work",
		Description: "A transparent process where you see progress every week and always know what is next.",
		Steps: []ProcessStep{
			{
				Title:       "01 Discover",
				Description: "Align goals, user context, technical constraints, and success metrics in one focused kickoff.",
			},
			{
				Title:       "02 Design + Scope",
				Description: "Turn strategy into clear user flows, interface direction, and a realistic delivery scope.",
			},
			{
				Title:       "03 Build with visibility",
				Description: "Ship in weekly iterations with demos, changelogs, and documentation your team can follow.",
			},
			{
				Title:       "04 Launch + Iterate",
				Description: "Launch confidently with QA and analytics, then improve based on real user behavior.",
			},
		},
	},
	Stack: StackCopy{
		Title:       "Tech stack",
		Description: "We pick tools for speed, reliability, and long-term maintainability.",
		Tools: []string{
			"Next.js", "React", "TypeScript", "Node.js", "PostgreSQL", "Prisma",
			"Tailwind CSS", "shadcn/ui", "Framer Motion", "Vercel", "Stripe", "Supabase",
		},
	},
	FAQ: FAQCopy{
		Title: "FAQ",
		Items: []FAQItem{
			{
				Question: "How quickly can we start?",
				Answer:   "Most projects start within 1 to 2 weeks after the discovery call and scope alignment.",
			},
			{
				Question: "Can you take over existing codebases?",
				Answer:   "Yes. We often enter existing platforms, stabilize quality, and continue product delivery.",
			},
			{
				Question: "Do you only design or only develop?",
				Answer:   "We deliver both. Product design and engineering stay tightly connected through the full process.",
			},
			{
				Question: "How do you keep clients in the loop?",
				Answer:   "Weekly demos, written updates, and clear documentation so decisions are always transparent.",
			},
		},
	},
	Booking: BookingCopy{
		Title:       "Book a focused product session today",
		Description: "Tell us where you are now, what you need to ship, and we will map the fastest path forward.",
		CTA:         "Secure your time slot",
		EmbedTitle:  "Calendly booking widget",
	},
	Footer: FooterCopy{
		City:    "Copenhagen, Denmark",
		About:   "Stubio is a designer + developer duo building modern digital products with fast delivery, clean code, and transparent weekly documentation.",
		Explore: "Explore",
		Contact: "Contact",
		Privacy: "Privacy",
		Terms:   "Terms",
		Rights:  "All rights reserved.",
	},
	Login: LoginCopy{
		Title:    "Client login",
		Subtitle: "Sign in to access your private client workspace.",
		Email:    "Email",
		Password: "Password",
		Submit:   "Sign in",
		DemoHint: "Use the credentials provided for your company workspace.",
		Back:     "Back to site",

		ErrorMissingCredentials: "Please enter both email and password.",
		ErrorInvalidCredentials: "Incorrect email or password. Please try again.",
		ErrorServerError:        "Login failed. Please try again.",
	},
	Privacy: LegalCopy{
		Title:   "Privacy policy",
		Updated: "Updated: February 10, 2026",
		Content: "This is a placeholder privacy policy. Replace this content with your legal text before going live.",
	},
	Terms: LegalCopy{
		Title:   "Terms of service",
		Updated: "Updated: February 10, 2026",
		Content: "This is a placeholder terms document. Replace this content with your legal text before going live.",
	},
	Workspace: WorkspaceCopy{
		Title:    "Client workspace",
		Subtitle: "Your project updates, resources, and payments in one place.",
		Tabs: WorkspaceTabsCopy{
			Overview:  "Overview",
			Resources: "Resources",
			Payments:  "Payments",
		},
		Greeting: GreetingCopy{
			Morning:   "Good morning",
			Afternoon: "Good afternoon",
			Evening:   "Good evening",
		},
		Overview: WorkspaceOverviewCopy{
			Title:      "Overview",
			Company:    "Company",
			Status:     "Project status",
			Milestone:  "Next milestone",
			Due:        "Milestone due date",
			LastUpdate: "Last update",
			Empty:      "No overview data has been added yet.",
			Logout:     "Logout",
		},
		Resources: WorkspaceResourcesCopy{
			Title: "Resources",
			Empty: "No resources available yet.",
			Open:  "Open document",
		},
		Payments: WorkspacePaymentsCopy{
			Title:       "Payments",
			FutureTitle: "Future payments",
			PastTitle:   "Past payments",
			Empty:       "No payments available yet.",
			ItemLabel:   "Item",
			DateLabel:   "Date",
			AmountLabel: "Amount",
			OpenReceipt: "Open receipt",
			DueLabel:    "Due",
			IssuedLabel: "Issued",
			Statuses: PaymentStatusCopy{
				Scheduled: "Scheduled",
				Pending:   "Pending",
				Paid:      "Paid",
				Overdue:   "Overdue",
				Unknown:   "Unknown",
			},
		},
		SetupWarning: "Some workspace tables are not available yet. Follow the backend setup steps to complete the workspace data model.",
	},
	Document: DocumentCopy{
		Back:         "Back",
		IframeTitle:  "Workspace document",
		OpenExternal: "Open in new tab",
	},
}
