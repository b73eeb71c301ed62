package i18n

var copyDA = SiteCopy{
	Metadata: MetadataCopy{
		Title:       "Digitalt produktstudie i København",
		Description: "Designer + udvikler duo, der bygger konverterende websites, apps og full-stack platforme fra København.",
	},
	Nav: NavCopy{
		HowWeWork: "Vores proces",
		Projects:  "Cases",
		FAQ:       "FAQ",
		Login:     "Login",
		Book:      "Book et møde",
		Language:  "Sprog",
	},
	Hero: HeroCopy{
		Badge:        "Produktstudie fra København",
		Title:        "Fra idé til lanceret produkt hurtigt og dokumenteret.",
		Description:  "Vi er en designer + udvikler duo, der bygger moderne web- og app-løsninger baseret på reel brugeradfærd og robust kode.",
		PrimaryCTA:   "Book et møde",
		SecondaryCTA: "Se vores proces",
		TrustLine:    "Baseret i København, Danmark",
	},
	Services: ServicesCopy{
		Title:       "Det bygger vi",
		Description: "End-to-end produktleverancer med skarp designretning og driftssikker engineering.",
		Items: []ServiceItem{
			{
				Title:       "Weboplevelser",
				Description: "Marketing sites og produktplatforme der loader hurtigt og konverterer.",
				Points:      []string{"Next.js", "SEO-fokus", "Konverteringsfokus"},
			},
			{
				Title:       "Mobilapps",
				Description: "Mobilprodukter med native følelse, bygget ud fra reelle brugerflows.",
				Points:      []string{"iOS + Android", "Flydende UX", "Klar til analytics"},
			},
			{
				Title:       "Produktdesign",
				Description: "Fra rå idé til testbar prototype og skarp brugerflade.",
				Points:      []string{"UX research", "Design systems", "Hurtig iteration"},
			},
			{
				Title:       "Full-stack systemer",
				Description: "Backends, dashboards, betalinger, communities og databaser.",
				Points:      []string{"API'er", "Automatisering", "Sikker arkitektur"},
			},
		},
	},
	Comparison: ComparisonCopy{
		Title:       "Dårlig vs god levering",
		Description: "Forskellen mellem dyrt efterarbejde og trygge release-dage.",
		BadTitle:    "Jeres gennemsnitlige projekt",
		BadPoints: []string{
			"Design og kode udvikler sig hver for sig",
			"Hardcoded hacks blokerer nye features",
			"Ingen dokumentation bag beslutninger",
			"Langsomme sider og skrøbelige integrationer",
		},
		GoodTitle: "Stubio-tilgangen",
		GoodPoints: []string{
			"Design og udvikling arbejder som ét team",
			"Ren arkitektur der kan skalere med roadmap",
			"Transparent dokumentation og ugentlige checkpoints",
			"Hurtige, målbare og stabile releases",
		},
	},
	Process: ProcessCopy{
		Title:       "Sådan arbejder vi",
		Description: "En hurtig og transparent proces, hvor I ser fremdrift hver uge og altid ved, hvad næste skridt er.",
		Steps: []ProcessStep{
			{
				Title:       "01 Afklaring",
				Description: "Vi samler mål, brugerindsigter, tekniske rammer og succeskriterier i en fokuseret opstart.",
			},
			{
				Title:       "02 Design + Scope",
				Description: "Vi omsætter strategien til tydelige brugerflows, designretning og en realistisk leveranceplan.",
			},
			{
				Title:       "03 Byg med transparens",
				Description: "Vi leverer i ugentlige iterationer med demoer, changelogs og dokumentation I kan følge med i.",
			},
			{
				Title:       "04 Launch + Iteration",
				Description: "Vi lancerer sikkert med QA og analytics og forbedrer løbende ud fra reel brugeradfærd.",
			},
		},
	},
	Stack: StackCopy{
		Title:       "Tech stack",
		Description: "Vi vælger værktøjer for hastighed, stabilitet og langsigtet vedligehold.",
		Tools: []string{
			"Next.js", "React", "TypeScript", "Node.js", "PostgreSQL", "Prisma",
			"Tailwind CSS", "shadcn/ui", "Framer Motion", "Vercel", "Stripe", "Supabase",
		},
	},
	FAQ: FAQCopy{
		Title: "FAQ",
		Items: []FAQItem{
			{
				Question: "Hvor hurtigt kan vi starte?",
				Answer:   "De fleste projekter starter inden for 1-2 uger efter discovery call og scope-afklaring.",
			},
			{
				Question: "Kan I overtage en eksisterende kodebase?",
				Answer:   "Ja. Vi går ofte ind i eksisterende platforme, stabiliserer kvaliteten og fortsætter leverancen.",
			},
			{
				Question: "Leverer I kun design eller kun udvikling?",
				Answer:   "Vi leverer begge dele. Design og engineering hænger tæt sammen gennem hele forløbet.",
			},
			{
				Question: "Hvordan holder I os opdateret?",
				Answer:   "Ugentlige demoer, skriftlige statusopdateringer og tydelig dokumentation hele vejen.",
			},
		},
	},
	Booking: BookingCopy{
		Title:       "Book en fokuseret produktsession",
		Description: "Fortæl hvor I står nu, hvad I skal have lanceret, og vi skitserer den hurtigste vej frem.",
		CTA:         "Book en tid",
		EmbedTitle:  "Calendly bookingswidget",
	},
	Footer: FooterCopy{
		City:    "København, Danmark",
		About:   "Stubio er en designer + udvikler duo, der bygger moderne digitale produkter med hurtig levering, ren kode og transparent ugentlig dokumentation.",
		Explore: "Udforsk",
		Contact: "Kontakt",
		Privacy: "Privatliv",
		Terms:   "Vilkår",
		Rights:  "Alle rettigheder forbeholdes.",
	},
	Login: LoginCopy{
		Title:    "Kundelogin",
		Subtitle: "Log ind for at få adgang til dit private kundeområde.",
		Email:    "Email",
		Password: "Adgangskode",
		Submit:   "Log ind",
		DemoHint: "Brug de loginoplysninger du har modtaget til jeres workspace.",
		Back:     "Tilbage til siden",

		ErrorMissingCredentials: "Indtast både email og adgangskode.",
		ErrorInvalidCredentials: "Forkert email eller adgangskode. Prøv igen.",
		ErrorServerError:        "Login mislykkedes. Prøv igen.",
	},
	Privacy: LegalCopy{
		Title:   "Privatlivspolitik",
		Updated: "Opdateret: 10. februar 2026",
		Content: "Dette er en placeholder for privatlivstekst. Erstat indholdet med jeres juridiske tekst før lancering.",
	},
	Terms: LegalCopy{
		Title:   "Vilkår",
		Updated: "Opdateret: 10. februar 2026",
		Content: "Dette er en placeholder for vilkårstekst. Erstat indholdet med jeres juridiske tekst før lancering.",
	},
	Workspace: WorkspaceCopy{
		Title:    "Kundeområde",
		Subtitle: "Dine projektopdateringer, ressourcer og betalinger samlet ét sted.",
		Tabs: WorkspaceTabsCopy{
			Overview:  "Overblik",
			Resources: "Ressourcer",
			Payments:  "Betalinger",
		},
		Greeting: GreetingCopy{
			Morning:   "Godmorgen",
			Afternoon: "God eftermiddag",
			Evening:   "God aften",
		},
		Overview: WorkspaceOverviewCopy{
			Title:      "Overblik",
			Company:    "Virksomhed",
			Status:     "Projektstatus",
			Milestone:  "Næste milepæl",
			Due:        "Forfaldsdato",
			LastUpdate: "Seneste opdatering",
			Empty:      "Der er endnu ikke tilføjet data til overblikket.",
			Logout:     "Log ud",
		},
		Resources: WorkspaceResourcesCopy{
			Title: "Ressourcer",
			Empty: "Ingen ressourcer endnu.",
			Open:  "Åbn dokument",
		},
		Payments: WorkspacePaymentsCopy{
			Title:       "Betalinger",
			FutureTitle: "Kommende betalinger",
			PastTitle:   "Tidligere betalinger",
			Empty:       "Ingen betalinger endnu.",
			ItemLabel:   "Post",
			DateLabel:   "Dato",
			AmountLabel: "Beløb",
			OpenReceipt: "Åbn kvittering",
			DueLabel:    "Forfalder",
			IssuedLabel: "Udstedt",
			Statuses: PaymentStatusCopy{
				Scheduled: "Planlagt",
				Pending:   "Afventer",
				Paid:      "Betalt",
				Overdue:   "Forfalden",
				Unknown:   "Ukendt",
			},
		},
		SetupWarning: "Nogle workspace-tabeller mangler stadig. Følg backend-opsætningen for at færdiggøre datamodellen.",
	},
	Document: DocumentCopy{
		Back:         "Tilbage",
		IframeTitle:  "Workspace-dokument",
		OpenExternal: "Åbn i ny fane",
	},
}
