package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"zyppr/models"
)

// businessSummary is the bounded business snapshot sent to the model. The
// full service list, weekly schedules included, rides along so LIST_SERVICES
// can echo real objects instead of inventing them.
type businessSummary struct {
	ID       string                  `json:"id"`
	Name     string                  `json:"name"`
	Category models.BusinessCategory `json:"category"`
	Address  string                  `json:"address"`
	Zipcode  string                  `json:"zipcode"`
	Timezone string                  `json:"timezone"`
	Services []models.Service        `json:"services"`
}

// renderSlots flattens the projector output into the line format the
// instruction set declares as ground truth for bookable times.
func renderSlots(slots []models.ProjectedSlot, hasSchedules bool) string {
	if !hasSchedules {
		return "No services with scheduled times are available."
	}
	if len(slots) == 0 {
		return "No upcoming appointment slots found in the next two weeks."
	}
	lines := make([]string, len(slots))
	for i, s := range slots {
		lines[i] = fmt.Sprintf("- %s: Starts %s, Ends %s",
			s.ServiceName,
			s.StartTime.UTC().Format(time.RFC3339),
			s.EndTime.UTC().Format(time.RFC3339))
	}
	return strings.Join(lines, "\n")
}

// buildPrompt assembles the full per-turn context: acting role, user profile
// (or an explicit anonymous marker), business data, pre-computed slots, the
// current instant and the raw request text.
func buildPrompt(role models.Role, user *models.User, business models.Business, slots []models.ProjectedSlot, now time.Time, message string) string {
	profile := "Anonymous"
	if user != nil {
		var p any
		switch user.Role {
		case models.RoleCustomer:
			p = user.Customer
		case models.RoleBusinessOwner:
			p = user.Business
		}
		if b, err := json.Marshal(p); err == nil {
			profile = string(b)
		}
	}

	summary := businessSummary{
		ID:       business.ID,
		Name:     business.Name,
		Category: models.CategoryForType(business.Type),
		Address:  business.Address,
		Zipcode:  business.Zipcode,
		Timezone: business.Timezone,
		Services: business.Services,
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		summaryJSON = []byte("{}")
	}

	hasSchedules := false
	for _, svc := range business.Services {
		if len(svc.WeeklySchedule) > 0 {
			hasSchedules = true
			break
		}
	}

	return fmt.Sprintf(`Context:
- Role: %s
- User Profile: %s
- Business Data (includes full service details for listing): %s
- Pre-Calculated Upcoming Slots (for finding and booking appointments):
%s
- Current Date/Time: %s

User Request: %q

Please process this request and return the appropriate JSON response according to the contract.`,
		role, profile, summaryJSON, renderSlots(slots, hasSchedules),
		now.UTC().Format(time.RFC3339), message)
}
