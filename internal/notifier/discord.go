package notifier

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/tour-booking-api/internal/config"
	"github.com/gdg-garage/tour-booking-api/internal/models"
)

type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   messageSender
	channelID string
}

// NewDiscordNotifier builds a notifier from the bot token and channel in
// cfg. It returns an error when either is missing.
func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if cfg.DiscordNotificationsChannelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	return &DiscordNotifier{
		session:   session,
		channelID: cfg.DiscordNotificationsChannelID,
	}, nil
}

func (n *DiscordNotifier) NotifyReservation(event Event, reservation models.Reservation) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, formatReservation(event, reservation))
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

func formatReservation(event Event, reservation models.Reservation) string {
	var title string
	switch event {
	case EventReservationCreated:
		title = "🎉 **New Reservation**"
	case EventReservationCancelled:
		title = "😢 **Reservation Cancelled**"
	default:
		title = "🔄 **Reservation Updated**"
	}

	tour := reservation.TourID
	if reservation.Tour != nil {
		tour = fmt.Sprintf("%s (%s)", reservation.Tour.Title, reservation.Tour.Location)
	}
	guest := reservation.UserID
	if reservation.User != nil {
		guest = reservation.User.Name
	}

	var b strings.Builder
	b.WriteString(title)
	fmt.Fprintf(&b, "\n**Tour:** %s", tour)
	fmt.Fprintf(&b, "\n**Guest:** %s", guest)
	fmt.Fprintf(&b, "\n**Date:** %s", reservation.Date.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "\n**Guests:** %d", reservation.Guests)
	fmt.Fprintf(&b, "\n**Total:** %.2f", reservation.TotalPrice)
	fmt.Fprintf(&b, "\n**Status:** %s", reservation.Status)
	return b.String()
}
