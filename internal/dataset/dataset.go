// Package dataset generates and holds the portal's synthetic retail data.
//
// All data is produced once by Seed from a single base seed and an injected
// clock, so two datasets built with the same Config are identical. The
// pipeline is explicit: each generator takes the earlier generators' output
// as arguments, which makes the dependency order a compile-time property
// rather than an initialization-order accident.
package dataset

import (
	"time"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/seeded"
)

// Per-generator offsets from the base seed. Each generator draws from its own
// stream so a size change in one collection never shifts the others.
const (
	seedAgents        = 0
	seedConversations = 1
	seedMetrics       = 2
	seedCosts         = 3
	seedIncidents     = 4
	seedTransactions  = 5
	seedAudit         = 6
)

// Defaults applied by Seed when the corresponding Config field is zero.
const (
	DefaultSeed          = 12345
	DefaultConversations = 500
	DefaultAuditLogs     = 200
	DefaultMetricsDays   = 30
)

// Config controls dataset generation. The zero value is usable; Seed fills in
// defaults.
type Config struct {
	// Seed is the base RNG seed shared by all generators.
	Seed int64
	// Now anchors all generated timestamps. Zero means time.Now().
	Now time.Time
	// Conversations is the number of conversations to generate.
	Conversations int
	// AuditLogs is the number of audit-log entries to generate.
	AuditLogs int
	// MetricsDays is the length of the daily metrics window.
	MetricsDays int
}

func (c Config) withDefaults() Config {
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.Now.IsZero() {
		c.Now = time.Now()
	}
	if c.Conversations == 0 {
		c.Conversations = DefaultConversations
	}
	if c.AuditLogs == 0 {
		c.AuditLogs = DefaultAuditLogs
	}
	if c.MetricsDays == 0 {
		c.MetricsDays = DefaultMetricsDays
	}
	return c
}

// Dataset is the complete in-memory data registry. It is built once by Seed
// and read-only afterwards, so handlers may share it without locking.
type Dataset struct {
	Seed        int64
	GeneratedAt time.Time

	Agents        []model.Agent
	Stores        []model.Store
	Users         []model.User
	Incidents     []model.Incident
	Conversations []model.Conversation
	Metrics       []model.DailyMetrics
	Costs         []model.CostRecord
	Transactions  []model.AgentTransactionLog
	AuditLogs     []model.AuditLog

	agentsByID    map[string]*model.Agent
	incidentsByID map[string]*model.Incident
}

// Seed builds the full dataset. It returns an error if any cross-reference
// cannot be resolved, which indicates a broken fixture table rather than a
// runtime condition.
func Seed(cfg Config) (*Dataset, error) {
	cfg = cfg.withDefaults()

	d := &Dataset{
		Seed:        cfg.Seed,
		GeneratedAt: cfg.Now,
		Stores:      storeFixtures,
	}

	d.Agents = generateAgents(seeded.New(cfg.Seed+seedAgents), cfg.Now)
	d.agentsByID = make(map[string]*model.Agent, len(d.Agents))
	for i := range d.Agents {
		d.agentsByID[d.Agents[i].ID] = &d.Agents[i]
	}

	incidents, err := generateIncidents(seeded.New(cfg.Seed+seedIncidents), cfg.Now, d.Agents, d.Stores)
	if err != nil {
		return nil, err
	}
	d.Incidents = incidents
	d.incidentsByID = make(map[string]*model.Incident, len(d.Incidents))
	for i := range d.Incidents {
		d.incidentsByID[d.Incidents[i].ID] = &d.Incidents[i]
	}

	d.Conversations = generateConversations(seeded.New(cfg.Seed+seedConversations), cfg.Now, cfg.Conversations, d.Agents, d.Stores, d.Incidents)
	d.Metrics = generateMetrics(seeded.New(cfg.Seed+seedMetrics), cfg.Now, cfg.MetricsDays, d.Agents)
	d.Costs = generateCosts(seeded.New(cfg.Seed+seedCosts), d.Metrics, d.agentsByID)

	d.Transactions = generateTransactions(seeded.New(cfg.Seed+seedTransactions), cfg.Now, d.Agents, d.Stores)

	auditSrc := seeded.New(cfg.Seed + seedAudit)
	d.Users = generateUsers(auditSrc, cfg.Now)
	d.AuditLogs = generateAuditLogs(auditSrc, cfg.Now, cfg.AuditLogs, d.Users, d.Agents, d.Incidents, d.Stores)

	return d, nil
}

// AgentByID returns the agent with the given ID, or false when unknown.
func (d *Dataset) AgentByID(id string) (model.Agent, bool) {
	a, ok := d.agentsByID[id]
	if !ok {
		return model.Agent{}, false
	}
	return *a, true
}

// IncidentByID returns the incident with the given ID, or false when unknown.
func (d *Dataset) IncidentByID(id string) (model.Incident, bool) {
	inc, ok := d.incidentsByID[id]
	if !ok {
		return model.Incident{}, false
	}
	return *inc, true
}
