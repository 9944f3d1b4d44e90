// Package catalog holds the static marketing catalog: services, audiences,
// and case studies. The data is reference-only — never persisted or
// mutated at runtime.
package catalog

// Service describes one offered service, including the fields rendered on
// its detail page.
type Service struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Logo         string   `json:"logo"`
	Short        string   `json:"short"`
	Long         string   `json:"long"`
	Image        string   `json:"image"`
	UseCases     []string `json:"useCases"`
	Deliverables []string `json:"deliverables"`
	Timeline     string   `json:"timeline"`
	Pricing      string   `json:"pricing"`
	KPIs         []string `json:"kpis"`
	Tech         []string `json:"tech"`
}

// Audience describes one target audience with the detail-page fields.
type Audience struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Logo                string   `json:"logo"`
	Short               string   `json:"short"`
	Long                string   `json:"long"`
	Image               string   `json:"image"`
	Size                string   `json:"audienceSize"`
	Segments            []string `json:"segments"`
	UseCases            []string `json:"useCases"`
	RecommendedServices []string `json:"recommendedServices"`
	KPIs                []string `json:"kpis"`
	Deliverables        []string `json:"deliverables"`
}

// CaseStudy describes one published client case study.
type CaseStudy struct {
	ID        string   `json:"id"`
	Client    string   `json:"client"`
	Title     string   `json:"title"`
	Image     string   `json:"image"`
	Challenge string   `json:"challenge"`
	Solution  string   `json:"solution"`
	Results   []string `json:"results"`
}

// Services returns the full services catalog.
func Services() []Service { return services }

// Audiences returns the full audiences catalog.
func Audiences() []Audience { return audiences }

// CaseStudies returns the full case-studies catalog.
func CaseStudies() []CaseStudy { return caseStudies }

// ServiceByID looks up a service for a detail page.
func ServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// AudienceByID looks up an audience for a detail page.
func AudienceByID(id string) (Audience, bool) {
	for _, a := range audiences {
		if a.ID == id {
			return a, true
		}
	}
	return Audience{}, false
}

var services = []Service{
	{
		ID:           "abm",
		Title:        "Account-Based Marketing",
		Logo:         "🎯",
		Short:        "Target high-value accounts with personalized campaigns.",
		Image:        "assets/collection-947345-1200x800.jpeg",
		Long:         "Drive engagement and pipeline from your best-fit accounts.",
		UseCases:     []string{"Personalized outreach", "Account scoring"},
		Deliverables: []string{"Account list", "Campaign assets"},
		Timeline:     "2-4 weeks",
		Pricing:      "Fixed or custom",
		KPIs:         []string{"Engagement rate", "Pipeline created"},
		Tech:         []string{"CRM", "Marketing Automation"},
	},
	{
		ID:           "demand-generation",
		Title:        "Demand Generation",
		Logo:         "🚀",
		Short:        "Multi-channel programs to generate qualified pipeline.",
		Image:        "assets/collection-1163637-1200x800.jpeg",
		Long:         "Run integrated campaigns across email, social, and programmatic to drive demand and fill your pipeline.",
		UseCases:     []string{"Lead generation", "Pipeline acceleration"},
		Deliverables: []string{"Campaign plan", "Performance dashboard"},
		Timeline:     "4-8 weeks",
		Pricing:      "Retainer or project",
		KPIs:         []string{"Leads generated", "Pipeline value"},
		Tech:         []string{"Ad Platforms", "CRM"},
	},
	{
		ID:           "lead-generation",
		Title:        "Lead Generation",
		Logo:         "📈",
		Short:        "Verified leads for your sales team.",
		Image:        "assets/collection-1245976-1200x800.jpeg",
		Long:         "Deliver high-quality, verified leads matched to your ICP and ready for sales outreach.",
		UseCases:     []string{"Outbound prospecting", "Event follow-up"},
		Deliverables: []string{"Lead list", "Contact verification"},
		Timeline:     "2-6 weeks",
		Pricing:      "Per lead or project",
		KPIs:         []string{"Leads delivered", "Conversion rate"},
		Tech:         []string{"Data Enrichment", "CRM"},
	},
	{
		ID:           "content-creation",
		Title:        "Content Creation",
		Logo:         "✍️",
		Short:        "Engaging content for campaigns and nurture.",
		Image:        "assets/collection-1072004-1200x800.jpeg",
		Long:         "Produce high-impact content assets for every stage of the funnel, from blogs to case studies.",
		UseCases:     []string{"Thought leadership", "Nurture campaigns"},
		Deliverables: []string{"Blog posts", "Case studies", "Whitepapers"},
		Timeline:     "2-8 weeks",
		Pricing:      "Per asset or retainer",
		KPIs:         []string{"Content engagement", "Leads influenced"},
		Tech:         []string{"CMS", "Design Tools"},
	},
	{
		ID:           "data-enrichment",
		Title:        "Data Enrichment",
		Logo:         "💡",
		Short:        "Enhance your CRM with fresh, accurate data.",
		Image:        "assets/collection-827743-1200x800.jpeg",
		Long:         "Append, clean, and enrich your CRM or marketing database for better targeting and segmentation.",
		UseCases:     []string{"Account scoring", "Segmentation"},
		Deliverables: []string{"Enriched data file", "Segmentation report"},
		Timeline:     "1-3 weeks",
		Pricing:      "Per record or project",
		KPIs:         []string{"Data accuracy", "Segmentation depth"},
		Tech:         []string{"Data Providers", "CRM"},
	},
	{
		ID:           "appointment-generation",
		Title:        "Appointment Generation",
		Logo:         "📅",
		Short:        "Book meetings with qualified prospects.",
		Image:        "assets/collection-190727-1200x800.jpeg",
		Long:         "End-to-end appointment setting for your sales team, including outreach and qualification.",
		UseCases:     []string{"Sales meetings", "Demo bookings"},
		Deliverables: []string{"Booked meetings", "Meeting summaries"},
		Timeline:     "2-6 weeks",
		Pricing:      "Per meeting or retainer",
		KPIs:         []string{"Meetings booked", "Show rate"},
		Tech:         []string{"Calendaring", "CRM"},
	},
	{
		ID:           "email-marketing",
		Title:        "Email Marketing",
		Logo:         "📧",
		Short:        "Automated and targeted email campaigns.",
		Image:        "assets/collection-947345-1200x800.jpeg",
		Long:         "Design, build, and run email campaigns for nurture, product launches, and more.",
		UseCases:     []string{"Nurture flows", "Product announcements"},
		Deliverables: []string{"Email templates", "Campaign reports"},
		Timeline:     "2-4 weeks",
		Pricing:      "Per campaign or retainer",
		KPIs:         []string{"Open rate", "Click rate"},
		Tech:         []string{"Email Platform", "CRM"},
	},
}

var audiences = []Audience{
	{
		ID:                  "aud-it",
		Title:               "IT Audience",
		Logo:                "🖥️",
		Short:               "Reach 7M+ IT professionals across roles and seniority.",
		Image:               "assets/collection-947345-1200x800.jpeg",
		Long:                "Technical decision-makers, architects and engineering leaders focused on infrastructure, platform and developer productivity. This audience responds to content that highlights scalability, security, cost savings and integration ease.",
		Size:                "7M+",
		Segments:            []string{"Developers", "Engineering Managers", "DevOps", "CTO/VP Eng"},
		UseCases:            []string{"Drive adoption of developer tools", "Pitch platform/infra cost optimisation", "Promote observability and SRE offers"},
		RecommendedServices: []string{"data-enrichment", "abm", "demand-generation"},
		KPIs:                []string{"Product qualified leads (PQLs)", "Demo requests", "Time-to-trial conversion"},
		Deliverables:        []string{"Target account list", "Technical one-pagers & integration guides", "ABM playbook for enterprise accounts"},
	},
	{
		ID:                  "aud-sales",
		Title:               "Sales Audience",
		Logo:                "🤝",
		Short:               "Target sales leaders and revenue teams for pipeline-driven outreach.",
		Image:               "assets/collection-1163637-1200x800.jpeg",
		Long:                "Revenue leaders and ops teams focused on pipeline, forecasting and GTM efficiency. Messaging that emphasises faster deal velocity, higher win rates and better lead quality resonates well.",
		Size:                "1.8M+",
		Segments:            []string{"Head of Sales", "Sales Ops", "AE/SDR Leads"},
		UseCases:            []string{"Improve lead-to-opportunity conversion", "Automate lead verification & routing", "Enable sales with tailored playbooks"},
		RecommendedServices: []string{"lead-generation", "appointment-generation", "email-marketing"},
		KPIs:                []string{"Meetings booked", "Qualified-to-opportunity rate", "Pipeline influenced"},
		Deliverables:        []string{"Verified lead lists", "Sales enablement playbooks", "Sequenced outreach templates"},
	},
	{
		ID:                  "aud-marketing",
		Title:               "Marketing Audience",
		Logo:                "📣",
		Short:               "Marketing decision-makers and content leads to amplify campaigns.",
		Image:               "assets/collection-1072004-1200x800.jpeg",
		Long:                "CMOs, growth and demand-gen leads who prioritise scalable campaigns, content ROI and measurable attribution models. They respond to thought leadership and data-driven case studies.",
		Size:                "2.4M+",
		Segments:            []string{"CMO", "Growth Lead", "Content Marketers"},
		UseCases:            []string{"Content syndication for lead gen", "Nurture flows for trial activation", "Measurement-driven channel optimisation"},
		RecommendedServices: []string{"content-creation", "demand-generation", "email-marketing"},
		KPIs:                []string{"MQLs", "CAC per channel", "Engagement rate"},
		Deliverables:        []string{"Content calendar & briefs", "Channel mix plan", "Performance dashboard"},
	},
	{
		ID:                  "aud-finance",
		Title:               "Finance Audience",
		Logo:                "💵",
		Short:               "CFOs and finance teams for budgeting and procurement conversations.",
		Image:               "assets/collection-1245976-1200x800.jpeg",
		Long:                "Financial decision-makers focused on ROI, TCO and procurement cycles. Messaging that centres on cost savings, compliance and measurable ROI wins attention.",
		Size:                "650K+",
		Segments:            []string{"CFO", "VP Finance", "Procurement"},
		UseCases:            []string{"Cost-optimisation case studies", "Procurement-friendly pricing models", "Compliance & audit readiness"},
		RecommendedServices: []string{"data-enrichment", "abm"},
		KPIs:                []string{"TCO reduction", "ROI on pilots", "Procurement cycle time"},
		Deliverables:        []string{"ROI case study", "Procurement pack (SOW, pricing)", "Risk & compliance summary"},
	},
	{
		ID:                  "aud-health",
		Title:               "Healthcare Audience",
		Logo:                "🩺",
		Short:               "Healthcare professionals and decision-makers across clinical & admin roles.",
		Image:               "assets/collection-190727-1200x800.jpeg",
		Long:                "Clinicians, healthcare administrators and digital health leads who prioritise safety, patient outcomes and regulatory compliance. Trust-building content and validation studies are critical.",
		Size:                "1.2M+",
		Segments:            []string{"Clinicians", "Healthcare IT", "Hospital Admin"},
		UseCases:            []string{"Clinical decision support trials", "Workflow automation for admin tasks", "Secure data integrations"},
		RecommendedServices: []string{"data-enrichment", "lead-generation"},
		KPIs:                []string{"Trial adoption", "Clinical validation metrics", "Integration uptime"},
		Deliverables:        []string{"Pilot protocol", "Integration spec", "Validation report"},
	},
	{
		ID:                  "aud-hr",
		Title:               "HR Audience",
		Logo:                "👥",
		Short:               "HR and people teams for employer branding and talent solutions.",
		Image:               "assets/collection-827743-1200x800.jpeg",
		Long:                "People and talent leaders focused on employer branding, talent acquisition and employee experience. They value proof points around candidate quality and productivity gains.",
		Size:                "900K+",
		Segments:            []string{"CHRO", "Head of Talent", "Recruiting Leads"},
		UseCases:            []string{"Employer branding campaigns", "Recruiter enablement", "HR analytics for retention"},
		RecommendedServices: []string{"content-creation", "demand-generation"},
		KPIs:                []string{"Applicants per role", "Time to hire", "Offer acceptance rate"},
		Deliverables:        []string{"Candidate persona map", "Campaign assets for employer brand", "Reporting dashboard"},
	},
	{
		ID:                  "aud-manufacturing",
		Title:               "Manufacturing Audience",
		Logo:                "🏭",
		Short:               "Industrial and manufacturing contacts for operations and procurement.",
		Image:               "assets/aud-manufacturing-1200x800.jpeg",
		Long:                "Operations, plant managers and procurement teams looking for efficiency, predictive maintenance and supplier consolidation. Technical case studies and pilot results drive decisions.",
		Size:                "1.1M+",
		Segments:            []string{"Plant Ops", "Maintenance Leads", "Procurement"},
		UseCases:            []string{"Predictive maintenance pilots", "Supply chain optimisation", "OEE improvement programs"},
		RecommendedServices: []string{"predict", "data-enrichment"},
		KPIs:                []string{"Downtime reduction", "OEE uplift", "Maintenance cost savings"},
		Deliverables:        []string{"Pilot plan & sensors spec", "Integration & data pipeline", "Savings projection model"},
	},
}

var caseStudies = []CaseStudy{
	{
		ID:        "cs1",
		Client:    "B2B SaaS Platform",
		Title:     "Accelerating Pipeline with Intent Data",
		Image:     "assets/case-intentdata-1200x800.jpeg",
		Challenge: "Low conversion from inbound leads and lack of account-level insights.",
		Solution:  "Deployed intent signal tracking and account scoring to prioritize outreach. Ran ABM pilot with personalized content.",
		Results: []string{
			"3x increase in qualified pipeline",
			"42% faster sales cycle",
			"Pilot scaled to 4 business units",
		},
	},
	{
		ID:        "cs2",
		Client:    "FinTech Startup",
		Title:     "Product Adoption via Multichannel Activation",
		Image:     "assets/case-multichannel-1200x800.jpeg",
		Challenge: "New product struggled to gain traction with target accounts.",
		Solution:  "Designed multichannel campaign (email, LinkedIn, webinars) and built custom analytics dashboard for engagement tracking.",
		Results: []string{
			"Doubled product trial signups",
			"Secured 5 enterprise design partners",
			"Reduced CAC by 28%",
		},
	},
	{
		ID:        "cs3",
		Client:    "HealthTech Company",
		Title:     "Driving Clinical Engagement with Data",
		Image:     "assets/case-healthtech-1200x800.jpeg",
		Challenge: "Difficulty engaging clinicians for a new digital health platform.",
		Solution:  "Segmented outreach by specialty, created validation studies, and ran targeted webinars with KOLs.",
		Results: []string{
			"Secured 3 hospital pilot sites",
			"Clinician NPS +34",
			"First enterprise contract signed in 10 weeks",
		},
	},
	{
		ID:        "cs4",
		Client:    "Enterprise IT Vendor",
		Title:     "Scaling ABM for Enterprise Growth",
		Image:     "assets/case-abm-1200x800.jpeg",
		Challenge: "Stalled growth in key enterprise segments.",
		Solution:  "Built scalable ABM playbooks, automated account selection, and launched personalized nurture journeys.",
		Results: []string{
			"Expanded into 12 new enterprise accounts",
			"Lifted engagement by 67%",
			"Shortened sales cycle by 5 weeks",
		},
	},
}
