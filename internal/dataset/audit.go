package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"
	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/seeded"
)

// auditActions is the dotted action taxonomy. The prefix before the first
// dot decides the resource and the shape of the details payload.
var auditActions = []string{
	"agent.created",
	"agent.updated",
	"agent.deleted",
	"agent.started",
	"agent.stopped",
	"agent.config.changed",
	"incident.detected",
	"incident.escalated",
	"incident.assigned",
	"incident.resolved",
	"incident.commented",
	"alert.triggered",
	"alert.acknowledged",
	"alert.dismissed",
	"store.flagged",
	"store.cleared",
	"report.generated",
	"report.exported",
	"report.scheduled",
	"user.login",
	"user.logout",
	"policy.updated",
	"policy.approved",
	"threshold.adjusted",
	"threshold.breached",
}

// userDefinitions is the fixed portal user roster: 2 admins, 4 operators,
// 4 viewers.
var userDefinitions = []struct {
	name             string
	email            string
	role             model.UserRole
	lastLoginDaysAgo int
}{
	{"Sarah Mitchell", "sarah.mitchell@retailco.co.nz", model.RoleAdmin, 1},
	{"James Chen", "james.chen@retailco.co.nz", model.RoleAdmin, 1},
	{"Emma Thompson", "emma.thompson@retailco.co.nz", model.RoleOperator, 3},
	{"Michael Roberts", "michael.roberts@retailco.co.nz", model.RoleOperator, 2},
	{"Lisa Wang", "lisa.wang@retailco.co.nz", model.RoleOperator, 4},
	{"David Patel", "david.patel@retailco.co.nz", model.RoleOperator, 1},
	{"Sophie Brown", "sophie.brown@retailco.co.nz", model.RoleViewer, 5},
	{"Ryan Cooper", "ryan.cooper@retailco.co.nz", model.RoleViewer, 7},
	{"Olivia Kim", "olivia.kim@retailco.co.nz", model.RoleViewer, 3},
	{"Thomas Wilson", "thomas.wilson@retailco.co.nz", model.RoleViewer, 10},
}

func generateUsers(src *seeded.Source, now time.Time) []model.User {
	users := make([]model.User, 0, len(userDefinitions))
	for _, def := range userDefinitions {
		users = append(users, model.User{
			ID:        src.UUID(),
			Name:      def.name,
			Email:     def.email,
			Role:      def.role,
			Avatar:    "https://i.pravatar.cc/150?u=" + def.email,
			LastLogin: src.Recent(now, def.lastLoginDaysAgo),
		})
	}
	return users
}

var auditComments = []string{
	"Reviewed with regional manager, monitoring continues.",
	"Root cause confirmed, corrective action underway.",
	"Customer impact contained, follow-up scheduled.",
	"Awaiting supplier confirmation before closing.",
	"Metrics back within normal range.",
}

var auditUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15",
}

func generateAuditLog(src *seeded.Source, now time.Time, users []model.User, agents []model.Agent, incidents []model.Incident, stores []model.Store) model.AuditLog {
	user := seeded.Pick(src, users)
	action := seeded.Pick(src, auditActions)

	resource := "system"
	resourceID := ""
	details := map[string]any{}

	switch {
	case strings.HasPrefix(action, "agent."):
		agent := seeded.Pick(src, agents)
		resource = "agent"
		resourceID = agent.ID
		details["agentName"] = agent.Name
		details["category"] = agent.Category
		if action == "agent.updated" || action == "agent.config.changed" {
			details["changes"] = map[string]any{
				"field":    seeded.Pick(src, []string{"temperature", "maxTokens", "systemPrompt", "threshold"}),
				"oldValue": src.AlphaNum(6),
				"newValue": src.AlphaNum(6),
			}
		}
	case strings.HasPrefix(action, "incident."):
		incident := seeded.Pick(src, incidents)
		resource = "incident"
		resourceID = incident.ID
		details["incidentTitle"] = incident.Title
		details["severity"] = incident.Severity
		details["status"] = incident.Status
		switch action {
		case "incident.escalated":
			details["escalatedTo"] = seeded.Pick(src, []string{"Regional Manager", "Loss Prevention", "Executive Team"})
		case "incident.commented":
			details["comment"] = seeded.Pick(src, auditComments)
		case "incident.assigned":
			details["assignedTo"] = seeded.Pick(src, users).Name
		}
	case strings.HasPrefix(action, "alert."):
		agent := seeded.Pick(src, agents)
		resource = "alert"
		resourceID = src.UUID()
		details["alertType"] = seeded.Pick(src, []string{"threshold_breach", "anomaly_detected", "pattern_match", "critical_event"})
		details["agentName"] = agent.Name
		details["severity"] = seeded.Pick(src, []string{"critical", "high", "medium", "low"})
	case strings.HasPrefix(action, "store."):
		store := seeded.Pick(src, stores)
		resource = "store"
		resourceID = store.ID
		details["storeName"] = store.Name
		details["region"] = store.Region
		details["reason"] = seeded.Pick(src, []string{"shrinkage_threshold", "compliance_issue", "performance_alert", "security_concern"})
	case strings.HasPrefix(action, "report."):
		resource = "report"
		resourceID = src.UUID()
		details["reportType"] = seeded.Pick(src, []string{"daily_summary", "incident_report", "performance_analysis", "cost_breakdown", "shrinkage_report"})
		details["format"] = seeded.Pick(src, []string{"pdf", "xlsx", "csv"})
		details["scope"] = seeded.Pick(src, []string{"all_stores", "region", "single_store"})
	case strings.HasPrefix(action, "user."):
		resource = "user"
		resourceID = user.ID
		details["ip"] = fmt.Sprintf("%d.%d.%d.%d", src.IntBetween(1, 255), src.IntBetween(0, 255), src.IntBetween(0, 255), src.IntBetween(1, 254))
		details["userAgent"] = seeded.Pick(src, auditUserAgents)
		details["location"] = seeded.Pick(src, []string{"Auckland", "Wellington", "Christchurch", "Hamilton"})
	case strings.HasPrefix(action, "policy."):
		resource = "policy"
		resourceID = src.UUID()
		details["policyName"] = seeded.Pick(src, []string{"return-policy", "discount-threshold", "void-limit", "shrinkage-tolerance", "escalation-rules"})
		details["change"] = seeded.Pick(src, auditComments)
	case strings.HasPrefix(action, "threshold."):
		agent := seeded.Pick(src, agents)
		resource = "threshold"
		resourceID = src.UUID()
		details["thresholdType"] = seeded.Pick(src, []string{"shrinkage_limit", "return_rate", "void_frequency", "discount_depth"})
		details["agentName"] = agent.Name
		details["oldValue"] = src.IntBetween(1, 10)
		details["newValue"] = src.IntBetween(1, 10)
	}

	return model.AuditLog{
		ID:         src.UUID(),
		Timestamp:  src.Recent(now, 30),
		UserID:     user.ID,
		UserName:   user.Name,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
	}
}

func generateAuditLogs(src *seeded.Source, now time.Time, count int, users []model.User, agents []model.Agent, incidents []model.Incident, stores []model.Store) []model.AuditLog {
	logs := make([]model.AuditLog, 0, count)
	for i := 0; i < count; i++ {
		logs = append(logs, generateAuditLog(src, now, users, agents, incidents, stores))
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs
}

// AuditFilter narrows FilterAuditLogs results. Zero-valued fields are
// ignored.
type AuditFilter struct {
	Action   string
	Resource string
	UserID   string
}

// FilterAuditLogs returns audit entries matching every set filter field,
// most recent first.
func (d *Dataset) FilterAuditLogs(f AuditFilter) []model.AuditLog {
	out := []model.AuditLog{}
	for _, l := range d.AuditLogs {
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Resource != "" && l.Resource != f.Resource {
			continue
		}
		if f.UserID != "" && l.UserID != f.UserID {
			continue
		}
		out = append(out, l)
	}
	return out
}

// UserByID returns the user with the given ID, or false when unknown.
func (d *Dataset) UserByID(id string) (model.User, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}
