package app

import (
	"fmt"
	"strings"

	"aadhira_hotel/internal/adapters/observability"
	"aadhira_hotel/internal/catalog"
	"aadhira_hotel/internal/domain"
)

// intent categories in priority order; the first with a contained keyword wins
var intentRules = []struct {
	intent   domain.Intent
	keywords []string
}{
	{domain.IntentRoomService, []string{"order", "food", "menu", "breakfast", "lunch", "dinner", "room service", "eat"}},
	{domain.IntentHousekeeping, []string{"towel", "clean", "housekeeping", "bed", "linen", "bathroom"}},
	{domain.IntentMaintenance, []string{"broken", "not working", "issue", "problem", "maintenance", "repair", "ac", "light", "water", "tv", "wifi"}},
	{domain.IntentStatus, []string{"status", "request", "pending"}},
}

// menu listing triggers, evaluated in order after a specific item lookup fails
var listingRules = []struct {
	category domain.Category // empty means the full menu
	keywords []string
	intro    string
	outro    string
}{
	{domain.CategoryBreakfast, []string{"breakfast", "morning"},
		"Sure! Here's what we've got for breakfast:", "What sounds good to you? Those South Indian dosas are amazing!"},
	{domain.CategoryLunch, []string{"lunch", "noon"},
		"Lunch time! Here's what's on the menu:", "The butter chicken is really popular. What are you in the mood for?"},
	{domain.CategoryDinner, []string{"dinner", "evening", "night"},
		"Perfect timing for dinner! Here's what we've got:", "The grilled salmon is always fresh. What catches your eye?"},
	{"", []string{"menu", "food", "eat"},
		"Absolutely! Here's our full room service menu:", "What looks good to you?"},
}

type Outcome struct {
	Intent  domain.Intent
	Reply   string
	Request *domain.ServiceRequest // set when the utterance produced a ledger entry
}

// Router classifies an utterance into a hotel-service intent and answers it,
// submitting service requests to the ledger as a side effect.
type Router struct {
	catalog *catalog.Catalog
	ledger  domain.RequestLedger
}

func NewRouter(c *catalog.Catalog, l domain.RequestLedger) *Router {
	return &Router{catalog: c, ledger: l}
}

// Route returns false when no hotel-service category matches.
func (r *Router) Route(utterance string) (Outcome, bool) {
	lower := strings.ToLower(utterance)
	for _, rule := range intentRules {
		if !containsAny(lower, rule.keywords) {
			continue
		}
		switch rule.intent {
		case domain.IntentRoomService:
			return r.roomService(lower), true
		case domain.IntentHousekeeping:
			return r.housekeeping(lower), true
		case domain.IntentMaintenance:
			return r.maintenance(lower), true
		case domain.IntentStatus:
			return Outcome{Intent: domain.IntentStatus, Reply: r.Status()}, true
		}
	}
	return Outcome{Intent: domain.IntentNone}, false
}

func (r *Router) roomService(lower string) Outcome {
	out := Outcome{Intent: domain.IntentRoomService}

	if item, ok := r.catalog.Find(lower); ok {
		price := catalog.FormatPrice(item.Price)
		if !item.Available {
			out.Reply = fmt.Sprintf("I'm sorry, but %s is currently not available. Would you like to try something else from our menu?", item.Name)
			return out
		}
		req := r.submit(domain.KindRoomService, fmt.Sprintf("Ordered: %s - %s", item.Name, price), domain.PriorityMedium)
		out.Request = &req
		out.Reply = fmt.Sprintf("Oh great! I just put in your order for %s. It should be up to your room in about 20-30 minutes. "+
			"That'll be %s. What else can I help you with while you wait?", item.Name, price)
		return out
	}

	for _, lr := range listingRules {
		if !containsAny(lower, lr.keywords) {
			continue
		}
		var body string
		if lr.category == "" {
			body = r.fullMenu()
		} else {
			body = bullets(r.catalog.Available(lr.category))
		}
		if body == "" {
			out.Reply = "I'm sorry, the kitchen has nothing available for that right now. Can I get you something else?"
			return out
		}
		out.Reply = lr.intro + "\n" + body + "\n\n" + lr.outro
		return out
	}

	out.Reply = "I'd be happy to help you with room service! You can ask for our menu, or order specific items " +
		"like breakfast, lunch, dinner, snacks, or beverages. What would you like?"
	return out
}

func (r *Router) fullMenu() string {
	var sections []string
	for _, cat := range domain.Categories {
		if b := bullets(r.catalog.Available(cat)); b != "" {
			sections = append(sections, "**"+strings.ToUpper(string(cat))+":**\n"+b)
		}
	}
	return strings.Join(sections, "\n\n")
}

func (r *Router) housekeeping(lower string) Outcome {
	out := Outcome{Intent: domain.IntentHousekeeping}
	rule, ok := firstRule(r.catalog.Housekeeping(), lower)
	if !ok {
		out.Reply = "I can help you with housekeeping requests! You can ask for fresh towels, room cleaning, " +
			"bed linens, or bathroom amenities. What would you like?"
		return out
	}
	req := r.submit(domain.KindHousekeeping, rule.Description, rule.Priority)
	out.Request = &req
	out.Reply = fmt.Sprintf("No problem at all! I've asked housekeeping for %s and they'll be with you %s. %s",
		rule.Label, eta(rule.ETAMinutes), rule.FollowUp)
	return out
}

func (r *Router) maintenance(lower string) Outcome {
	out := Outcome{Intent: domain.IntentMaintenance}
	rule, ok := firstRule(r.catalog.Maintenance(), lower)
	if !ok {
		out.Reply = "I can help you report maintenance issues! Common issues include AC problems, electrical issues, " +
			"plumbing problems, TV issues, or WiFi connectivity. What maintenance issue are you experiencing?"
		return out
	}
	req := r.submit(domain.KindMaintenance, rule.Description, rule.Priority)
	out.Request = &req

	var lead string
	switch rule.Priority {
	case domain.PriorityHigh:
		lead = fmt.Sprintf("I'm so sorry about that! I've reported the %s issue as urgent and our team is on the way. They should be there %s.",
			rule.Label, eta(rule.ETAMinutes))
	case domain.PriorityMedium:
		lead = fmt.Sprintf("Thanks for letting me know. I've reported the %s issue to our maintenance team and they'll arrive %s.",
			rule.Label, eta(rule.ETAMinutes))
	default:
		lead = fmt.Sprintf("Thanks for letting me know. I've logged the %s issue with our maintenance team and they'll stop by %s.",
			rule.Label, eta(rule.ETAMinutes))
	}
	out.Reply = lead + " " + rule.FollowUp
	return out
}

// Status summarizes open requests. It never mutates the ledger.
func (r *Router) Status() string {
	s := r.ledger.Summary()
	if len(s.Pending) == 0 && len(s.InProgress) == 0 {
		return "Great news! You're all caught up - no pending requests right now. " +
			"Is there anything I can help you with? Maybe order some food or schedule some housekeeping?"
	}

	var b strings.Builder
	b.WriteString("Here's the status of your service requests:\n\n")
	if len(s.Pending) > 0 {
		b.WriteString("**Pending Requests:**\n")
		for _, req := range s.Pending {
			fmt.Fprintf(&b, "• %s (%s) - %s priority\n", req.Description, req.Kind, req.Priority)
		}
		b.WriteString("\n")
	}
	if len(s.InProgress) > 0 {
		b.WriteString("**In Progress:**\n")
		for _, req := range s.InProgress {
			fmt.Fprintf(&b, "• %s (%s) - Being handled now\n", req.Description, req.Kind)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// QuickRequest submits a request picked from the services panel rather than
// typed. Maintenance is always high priority there.
func (r *Router) QuickRequest(kind domain.RequestKind, description string) (domain.ServiceRequest, string) {
	priority := domain.PriorityMedium
	if kind == domain.KindMaintenance {
		priority = domain.PriorityHigh
	}
	req := r.submit(kind, description, priority)
	msg := fmt.Sprintf("I've submitted your %s request: %s. Just ask me for your request status anytime to check on it.", kind, description)
	return req, msg
}

func (r *Router) submit(kind domain.RequestKind, description string, p domain.Priority) domain.ServiceRequest {
	req := r.ledger.Submit(kind, description, p)
	observability.ObserveRequest(string(kind), string(p))
	return req
}

func firstRule(rules []catalog.Rule, lower string) (catalog.Rule, bool) {
	for _, rule := range rules {
		if rule.Matches(lower) {
			return rule, true
		}
	}
	return catalog.Rule{}, false
}

func bullets(items []domain.ServiceItem) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("• %s - %s", it.Name, catalog.FormatPrice(it.Price)))
	}
	return strings.Join(lines, "\n")
}

func eta(minutes int) string {
	if minutes >= 60 {
		return "within the hour"
	}
	return fmt.Sprintf("in about %d minutes", minutes)
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
