package dataset

import "github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"

// agentDefinition is one row of the hand-authored agent table. The catalog
// generator turns each definition into a full Agent at seed time.
type agentDefinition struct {
	Name                  string
	Description           string
	SystemPrompt          string
	Category              model.AgentCategory
	PreferredModel        string
	ROIMetric             string
	CostPerTransaction    float64
	SavingsPerTransaction float64
	AvgTransactionsPerDay int
	PrimaryPlatform       model.Platform
	AdditionalPlatforms   []model.Platform
}

// agentDefinitions is the fixed 21-agent roster: 5 inventory, 4 pricing,
// 4 store operations, 4 customer service, 4 executive.
var agentDefinitions = []agentDefinition{
	// Inventory Intelligence
	{
		Name:                  "Stock Level Monitor",
		Description:           "Real-time inventory tracking across all store locations with automatic reorder triggers and low-stock alerts.",
		SystemPrompt:          "You monitor inventory levels across all retail locations, alerting when stock falls below thresholds and triggering automatic reorder recommendations.",
		Category:              model.CategoryInventory,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "35% stockout reduction",
		CostPerTransaction:    0.12,
		SavingsPerTransaction: 4.50,
		AvgTransactionsPerDay: 450,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},
	{
		Name:                  "Shelf Gap Detector",
		Description:           "Computer vision-powered shelf monitoring to identify out-of-stock conditions and planogram compliance issues.",
		SystemPrompt:          "You analyze shelf images to identify gaps, out-of-stock items, and planogram deviations, prioritizing restocking needs.",
		Category:              model.CategoryInventory,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "28% faster restocking",
		CostPerTransaction:    0.18,
		SavingsPerTransaction: 3.20,
		AvgTransactionsPerDay: 280,
		PrimaryPlatform:       model.PlatformFinOps,
	},
	{
		Name:                  "Inventory Reconciliation Agent",
		Description:           "Compares system inventory against physical counts and flags discrepancies for investigation.",
		SystemPrompt:          "You reconcile inventory counts between POS systems, warehouse management, and physical audits, flagging discrepancies that exceed variance thresholds.",
		Category:              model.CategoryInventory,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "92% variance detection",
		CostPerTransaction:    0.25,
		SavingsPerTransaction: 12.80,
		AvgTransactionsPerDay: 120,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},
	{
		Name:                  "Demand Forecaster",
		Description:           "ML-based demand prediction for seasonal and promotional inventory planning across all product categories.",
		SystemPrompt:          "You forecast product demand using historical sales, seasonal patterns, promotional calendars, and external factors to optimize inventory planning.",
		Category:              model.CategoryInventory,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "24% improved forecast accuracy",
		CostPerTransaction:    0.35,
		SavingsPerTransaction: 18.50,
		AvgTransactionsPerDay: 85,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},
	{
		Name:                  "Warehouse Sync Agent",
		Description:           "Coordinates inventory data between stores, warehouses, and distribution centers for optimal stock allocation.",
		SystemPrompt:          "You synchronize inventory across the supply chain, coordinating transfers between warehouses and stores to minimize stockouts and overstock.",
		Category:              model.CategoryInventory,
		PreferredModel:        "gpt-4o-mini",
		ROIMetric:             "18% reduced carrying costs",
		CostPerTransaction:    0.08,
		SavingsPerTransaction: 2.40,
		AvgTransactionsPerDay: 380,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},

	// Pricing and Promotions
	{
		Name:                  "Price Optimization Engine",
		Description:           "Dynamic pricing recommendations based on competitor data, demand signals, and margin targets.",
		SystemPrompt:          "You analyze market conditions, competitor pricing, and demand elasticity to recommend optimal price points that maximize revenue and margins.",
		Category:              model.CategoryPricing,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "$24K margin protected/month",
		CostPerTransaction:    0.45,
		SavingsPerTransaction: 32.00,
		AvgTransactionsPerDay: 150,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},
	{
		Name:                  "Promotion Performance Tracker",
		Description:           "Real-time ROI analysis for active promotional campaigns with recommendations for optimization.",
		SystemPrompt:          "You track promotional campaign performance, measuring lift, cannibalization, and ROI to provide optimization recommendations.",
		Category:              model.CategoryPricing,
		PreferredModel:        "gpt-4o-mini",
		ROIMetric:             "15% improved promo ROI",
		CostPerTransaction:    0.15,
		SavingsPerTransaction: 8.50,
		AvgTransactionsPerDay: 220,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformCRM},
	},
	{
		Name:                  "Markdown Advisor",
		Description:           "Suggests optimal markdown timing and depth for aging inventory to maximize recovery while clearing stock.",
		SystemPrompt:          "You analyze inventory age, sell-through rates, and margin targets to recommend optimal markdown strategies for clearing aging stock.",
		Category:              model.CategoryPricing,
		PreferredModel:        "gpt-4o-mini",
		ROIMetric:             "22% better markdown recovery",
		CostPerTransaction:    0.20,
		SavingsPerTransaction: 14.20,
		AvgTransactionsPerDay: 95,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},
	{
		Name:                  "Competitor Price Monitor",
		Description:           "Tracks competitor pricing across key categories and alerts on significant price changes requiring response.",
		SystemPrompt:          "You monitor competitor pricing, identify meaningful price movements, and alert when competitive response may be needed.",
		Category:              model.CategoryPricing,
		PreferredModel:        "gpt-3.5-turbo",
		ROIMetric:             "4hr faster price response",
		CostPerTransaction:    0.05,
		SavingsPerTransaction: 1.80,
		AvgTransactionsPerDay: 650,
		PrimaryPlatform:       model.PlatformFinOps,
	},

	// Store Operations
	{
		Name:                  "Staff Scheduling Optimizer",
		Description:           "Creates optimal shift schedules based on predicted foot traffic, sales patterns, and labor budget constraints.",
		SystemPrompt:          "You optimize staff schedules based on traffic forecasts, sales patterns, employee availability, and labor cost targets.",
		Category:              model.CategoryStoreOps,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "98% task compliance",
		CostPerTransaction:    0.30,
		SavingsPerTransaction: 22.50,
		AvgTransactionsPerDay: 45,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformCRM},
	},
	{
		Name:                  "Queue Management Agent",
		Description:           "Monitors checkout wait times and triggers alerts to open additional registers during peak periods.",
		SystemPrompt:          "You monitor queue lengths and wait times, alerting managers when additional checkout capacity is needed to maintain service levels.",
		Category:              model.CategoryStoreOps,
		PreferredModel:        "gpt-3.5-turbo",
		ROIMetric:             "35% reduced wait times",
		CostPerTransaction:    0.04,
		SavingsPerTransaction: 0.85,
		AvgTransactionsPerDay: 1200,
		PrimaryPlatform:       model.PlatformFinOps,
	},
	{
		Name:                  "Store Compliance Checker",
		Description:           "Audits store operations against company policies, safety regulations, and brand standards.",
		SystemPrompt:          "You audit store operations for compliance with policies, safety standards, and brand guidelines, flagging violations for correction.",
		Category:              model.CategoryStoreOps,
		PreferredModel:        "gpt-4o-mini",
		ROIMetric:             "94% compliance rate",
		CostPerTransaction:    0.22,
		SavingsPerTransaction: 15.00,
		AvgTransactionsPerDay: 180,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},
	{
		Name:                  "Maintenance Alert System",
		Description:           "Tracks equipment status, schedules preventive maintenance, and escalates critical repair needs.",
		SystemPrompt:          "You monitor store equipment health, schedule preventive maintenance, and escalate urgent repair needs to minimize downtime.",
		Category:              model.CategoryStoreOps,
		PreferredModel:        "gpt-3.5-turbo",
		ROIMetric:             "45% less equipment downtime",
		CostPerTransaction:    0.08,
		SavingsPerTransaction: 28.00,
		AvgTransactionsPerDay: 35,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},

	// Customer Service and Returns
	{
		Name:                  "Customer Inquiry Handler",
		Description:           "First-line support for product questions, store hours, stock availability, and general inquiries.",
		SystemPrompt:          "You handle customer inquiries about products, store information, and general questions with friendly, helpful responses.",
		Category:              model.CategoryCustomerService,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "60% faster resolution",
		CostPerTransaction:    0.15,
		SavingsPerTransaction: 8.50,
		AvgTransactionsPerDay: 850,
		PrimaryPlatform:       model.PlatformCRM,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},
	{
		Name:                  "Returns Processing Agent",
		Description:           "Validates return eligibility against policy, processes refund requests, and identifies return patterns.",
		SystemPrompt:          "You process return requests, validate eligibility against return policy, calculate refunds, and identify patterns in return behavior.",
		Category:              model.CategoryCustomerService,
		PreferredModel:        "gpt-4o-mini",
		ROIMetric:             "42% faster returns",
		CostPerTransaction:    0.18,
		SavingsPerTransaction: 6.20,
		AvgTransactionsPerDay: 320,
		PrimaryPlatform:       model.PlatformCRM,
		AdditionalPlatforms:   []model.Platform{model.PlatformFinOps},
	},
	{
		Name:                  "Customer Feedback Analyzer",
		Description:           "Aggregates and categorizes customer feedback from all channels for actionable insights.",
		SystemPrompt:          "You analyze customer feedback from surveys, reviews, and support interactions to identify trends and improvement opportunities.",
		Category:              model.CategoryCustomerService,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "85% sentiment coverage",
		CostPerTransaction:    0.25,
		SavingsPerTransaction: 4.80,
		AvgTransactionsPerDay: 480,
		PrimaryPlatform:       model.PlatformCRM,
	},
	{
		Name:                  "Loyalty Program Manager",
		Description:           "Handles points queries, tier upgrades, personalized offers, and member benefit inquiries.",
		SystemPrompt:          "You manage loyalty program interactions, answering points questions, processing tier changes, and delivering personalized offers.",
		Category:              model.CategoryCustomerService,
		PreferredModel:        "gpt-4o-mini",
		ROIMetric:             "28% higher engagement",
		CostPerTransaction:    0.10,
		SavingsPerTransaction: 3.50,
		AvgTransactionsPerDay: 580,
		PrimaryPlatform:       model.PlatformCRM,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},

	// Executive Insights
	{
		Name:                  "Daily Business Summary",
		Description:           "Compiles key metrics into executive-ready morning briefings with highlights and action items.",
		SystemPrompt:          "You compile daily business summaries with key metrics, notable events, and recommended actions for executive review.",
		Category:              model.CategoryExecutive,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "80% less analyst time",
		CostPerTransaction:    0.55,
		SavingsPerTransaction: 125.00,
		AvgTransactionsPerDay: 12,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral, model.PlatformCRM},
	},
	{
		Name:                  "Cross-Store Performance Comparator",
		Description:           "Benchmarks store performance across KPIs and identifies best practices for replication.",
		SystemPrompt:          "You compare store performance across key metrics, identifying top performers and practices that should be replicated.",
		Category:              model.CategoryExecutive,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "15% performance uplift",
		CostPerTransaction:    0.40,
		SavingsPerTransaction: 85.00,
		AvgTransactionsPerDay: 25,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},
	{
		Name:                  "Strategic Alert Coordinator",
		Description:           "Escalates critical issues requiring executive attention with context and recommended responses.",
		SystemPrompt:          "You identify critical business issues requiring executive attention, providing context and recommended response options.",
		Category:              model.CategoryExecutive,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "2hr faster escalation",
		CostPerTransaction:    0.35,
		SavingsPerTransaction: 450.00,
		AvgTransactionsPerDay: 8,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformCRM},
	},
	{
		Name:                  "Financial Health Monitor",
		Description:           "Tracks revenue, margins, and cost metrics against targets with variance analysis and trend alerts.",
		SystemPrompt:          "You monitor financial performance against targets, alerting on significant variances and providing trend analysis.",
		Category:              model.CategoryExecutive,
		PreferredModel:        "gpt-4o",
		ROIMetric:             "12% better margin visibility",
		CostPerTransaction:    0.48,
		SavingsPerTransaction: 180.00,
		AvgTransactionsPerDay: 18,
		PrimaryPlatform:       model.PlatformFinOps,
		AdditionalPlatforms:   []model.Platform{model.PlatformBusinessCentral},
	},
}
