package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/ghuser/shareit/services/booking/domain"
	"github.com/ghuser/shareit/services/booking/domain/models"
)

func TestNewBookingStartsWaiting(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)
	b := models.NewBooking(uuid.New(), uuid.New(), start, start.Add(24*time.Hour))

	if b.Status != models.StatusWaiting {
		t.Fatalf("new booking status = %s, want WAITING", b.Status)
	}
	if b.ID == uuid.Nil {
		t.Fatal("new booking has no id")
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		approved bool
		want     models.Status
	}{
		{"approve", true, models.StatusApproved},
		{"reject", false, models.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.NewBooking(uuid.New(), uuid.New(), time.Now(), time.Now().Add(time.Hour))
			if err := b.Decide(tt.approved); err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if b.Status != tt.want {
				t.Fatalf("status = %s, want %s", b.Status, tt.want)
			}
		})
	}
}

func TestDecideIsTerminal(t *testing.T) {
	for _, approved := range []bool{true, false} {
		b := models.NewBooking(uuid.New(), uuid.New(), time.Now(), time.Now().Add(time.Hour))
		if err := b.Decide(approved); err != nil {
			t.Fatalf("first Decide: %v", err)
		}

		prev := b.Status
		if err := b.Decide(!approved); !errors.Is(err, domain.ErrAlreadyDecided) {
			t.Fatalf("second Decide err = %v, want ErrAlreadyDecided", err)
		}
		if b.Status != prev {
			t.Fatalf("second Decide changed status to %s", b.Status)
		}
	}
}

func TestIsParty(t *testing.T) {
	booker, owner, stranger := uuid.New(), uuid.New(), uuid.New()
	b := models.NewBooking(uuid.New(), booker, time.Now(), time.Now().Add(time.Hour))

	if !b.IsParty(booker, owner) {
		t.Error("booker should be a party")
	}
	if !b.IsParty(owner, owner) {
		t.Error("owner should be a party")
	}
	if b.IsParty(stranger, owner) {
		t.Error("stranger should not be a party")
	}
}

func TestParseStateFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    models.StateFilter
		wantErr bool
	}{
		{"", models.StateAll, false},
		{"ALL", models.StateAll, false},
		{"current", models.StateCurrent, false},
		{"Past", models.StatePast, false},
		{"FUTURE", models.StateFuture, false},
		{"WAITING", models.StateWaiting, false},
		{"REJECTED", models.StateRejected, false},
		{"APPROVED", "", true},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		got, err := models.ParseStateFilter(tt.in)
		if tt.wantErr {
			if !errors.Is(err, domain.ErrUnsupportedState) {
				t.Errorf("ParseStateFilter(%q) err = %v, want ErrUnsupportedState", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseStateFilter(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
