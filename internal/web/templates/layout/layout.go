// Package layout holds the page shell shared by every screen.
package layout

// FlashMessage is a one-shot notice shown above the screen
type FlashMessage struct {
	Type    string // "error", "success" or "info"
	Message string
	// Offer is a flow event the notice offers as a button, empty for none
	Offer      string
	OfferLabel string
}

// PageData holds data common to every page
type PageData struct {
	Title     string
	Flash     *FlashMessage
	SessionID string
}

func pageTitle(t string) string {
	if t == "" || t == "꼬까옷" {
		return "꼬까옷"
	}
	return t + " | 꼬까옷"
}
