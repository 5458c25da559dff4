// services/messages.go
package services

import (
	"fmt"
	"net/url"
	"strings"

	"pawpro-backend/booking"
	"pawpro-backend/models"
)

// RenderTemplate fills a reminder template's placeholders from an
// appointment and its customer
func RenderTemplate(message string, appt *models.Appointment, customer *models.Customer) string {
	replacer := strings.NewReplacer(
		"[CustomerName]", customer.Name,
		"[PetName]", petNames(appt),
		"[Services]", serviceNames(appt),
		"[Date]", appt.StartsAt.Format("Mon, 2 Jan 2006"),
		"[Time]", appt.StartsAt.Format("3:04 PM"),
		"[Total]", fmt.Sprintf("%.2f", appt.TotalPrice),
	)
	return replacer.Replace(message)
}

// ConfirmationMessage builds the human-readable booking confirmation
// shown to the user and shared via messaging deep links
func ConfirmationMessage(appt *models.Appointment, customer *models.Customer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s! Your appointment %s is confirmed for %s at %s.\n",
		customer.Name,
		appt.Reference,
		appt.StartsAt.Format("Mon, 2 Jan 2006"),
		appt.StartsAt.Format("3:04 PM"))

	for _, row := range appt.Rows {
		fmt.Fprintf(&b, "- %s: %s", row.PetName, row.ServiceName)
		if row.TierLabel != "" {
			fmt.Fprintf(&b, " (%s)", row.TierLabel)
		}
		for _, addon := range row.Addons {
			fmt.Fprintf(&b, " + %s", addon.Name)
		}
		fmt.Fprintf(&b, " (%.2f)\n", row.Price)
	}

	fmt.Fprintf(&b, "Total: %.2f (approx. %d min)", appt.TotalPrice, appt.TotalDuration)

	if label := booking.RuleLabel(appt.RecurrenceRule); label != "Does not repeat" {
		fmt.Fprintf(&b, "\nRepeats: %s", label)
	}

	return b.String()
}

// WhatsAppDeepLink builds a wa.me link pre-filled with the message
func WhatsAppDeepLink(phone, message string) string {
	cleaned := strings.TrimPrefix(phone, "+")
	return "https://wa.me/" + cleaned + "?text=" + url.QueryEscape(message)
}

func petNames(appt *models.Appointment) string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range appt.Rows {
		if !seen[row.PetName] {
			seen[row.PetName] = true
			names = append(names, row.PetName)
		}
	}
	return strings.Join(names, ", ")
}

func serviceNames(appt *models.Appointment) string {
	var names []string
	for _, row := range appt.Rows {
		names = append(names, row.ServiceName)
	}
	return strings.Join(names, ", ")
}
