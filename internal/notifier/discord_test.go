package notifier

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/tour-booking-api/internal/config"
	"github.com/gdg-garage/tour-booking-api/internal/models"
)

type recordingSender struct {
	channelID string
	content   string
	err       error
}

func (s *recordingSender) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	s.channelID = channelID
	s.content = content
	return &discordgo.Message{}, s.err
}

func testReservation() models.Reservation {
	return models.Reservation{
		ID:         "r1",
		TourID:     "t1",
		Tour:       &models.Tour{Title: "Old Town Walk", Location: "Prague"},
		UserID:     "u1",
		User:       &models.User{Name: "Alice"},
		Date:       time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC),
		Guests:     2,
		TotalPrice: 200,
		Status:     models.StatusPending,
	}
}

func TestDiscordNotifier_NotifyReservation(t *testing.T) {
	sender := &recordingSender{}
	n := &DiscordNotifier{session: sender, channelID: "chan-1"}

	if err := n.NotifyReservation(EventReservationCreated, testReservation()); err != nil {
		t.Fatalf("NotifyReservation returned error: %v", err)
	}
	if sender.channelID != "chan-1" {
		t.Errorf("expected channel chan-1, got %s", sender.channelID)
	}
	for _, want := range []string{"New Reservation", "Old Town Walk (Prague)", "Alice", "2030-05-01 09:00 UTC", "**Guests:** 2", "200.00", "PENDING"} {
		if !strings.Contains(sender.content, want) {
			t.Errorf("expected message to contain %q, got:\n%s", want, sender.content)
		}
	}
}

func TestDiscordNotifier_SendError(t *testing.T) {
	sender := &recordingSender{err: errors.New("discord down")}
	n := &DiscordNotifier{session: sender, channelID: "chan-1"}

	if err := n.NotifyReservation(EventReservationCancelled, testReservation()); err == nil {
		t.Fatal("expected send error to be returned")
	}
	if !strings.Contains(sender.content, "Reservation Cancelled") {
		t.Errorf("unexpected message %s", sender.content)
	}
}

func TestNewDiscordNotifier_RequiresConfig(t *testing.T) {
	if _, err := NewDiscordNotifier(&config.Config{}); err == nil {
		t.Error("expected error without bot token")
	}
	if _, err := NewDiscordNotifier(&config.Config{DiscordBotToken: "token"}); err == nil {
		t.Error("expected error without channel ID")
	}
	n, err := NewDiscordNotifier(&config.Config{DiscordBotToken: "token", DiscordNotificationsChannelID: "chan"})
	if err != nil {
		t.Fatalf("NewDiscordNotifier returned error: %v", err)
	}
	if n.channelID != "chan" {
		t.Errorf("expected channel chan, got %s", n.channelID)
	}
}
