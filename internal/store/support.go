package store

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/catalog"
	"github.com/OsuohaNnamdi/warelink-admin/internal/notify"
)

// SupportAPI is the slice of the backend client the support screen needs.
type SupportAPI interface {
	ListTickets(ctx context.Context) ([]catalog.Ticket, error)
	ResolveTicket(ctx context.Context, id int64) error
	DeleteTicket(ctx context.Context, id int64) error
}

// TicketFilter selects which tickets the screen shows.
type TicketFilter string

const (
	TicketsAll      TicketFilter = "all"
	TicketsPending  TicketFilter = "pending"
	TicketsResolved TicketFilter = "resolved"
)

// Support is the support-tickets screen session.
type Support struct {
	tracker
	api      SupportAPI
	notifier notify.Notifier
	lg       *zap.Logger

	tickets []catalog.Ticket
	filter  TicketFilter
	search  string
}

// NewSupport creates a support store showing all tickets.
func NewSupport(api SupportAPI, notifier notify.Notifier, lg *zap.Logger) *Support {
	return &Support{api: api, notifier: notifier, lg: lg, filter: TicketsAll}
}

// Load fetches the ticket list; failure keeps the prior list.
func (s *Support) Load(ctx context.Context) error {
	g := s.begin()
	tickets, err := s.api.ListTickets(ctx)
	if !s.finish(g) {
		s.lg.Debug("Discarding stale ticket load")
		return nil
	}
	if err != nil {
		s.mu.Unlock()
		s.notifier.Notify(notify.Error("Oops...", "Failed to fetch tickets!"))
		return errors.Wrap(err, "load tickets")
	}
	s.tickets = tickets
	s.mu.Unlock()
	return nil
}

// SetFilter stages the resolved/pending filter.
func (s *Support) SetFilter(f TicketFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// SetSearch stages the subject/email search term.
func (s *Support) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
}

// Tickets returns the held tickets matching the filter and search term.
func (s *Support) Tickets() []catalog.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	term := strings.ToLower(s.search)
	var out []catalog.Ticket
	for _, t := range s.tickets {
		switch s.filter {
		case TicketsPending:
			if t.Resolved {
				continue
			}
		case TicketsResolved:
			if !t.Resolved {
				continue
			}
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Subject), term) &&
			!strings.Contains(strings.ToLower(t.Email), term) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Resolve marks a ticket resolved on the backend and in the held list.
func (s *Support) Resolve(ctx context.Context, id int64) error {
	g := s.begin()
	err := s.api.ResolveTicket(ctx, id)
	if !s.finish(g) {
		s.lg.Debug("Discarding stale ticket resolve", zap.Int64("ticket_id", id))
		return nil
	}
	if err != nil {
		s.mu.Unlock()
		s.notifier.Notify(notify.Error("Oops...", "Failed to resolve ticket!"))
		return errors.Wrap(err, "resolve ticket")
	}
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets[i].Resolved = true
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Notify(notify.Success("Resolved!", "The ticket has been marked as resolved."))
	return nil
}

// Remove deletes a ticket and drops it from the held list; failure
// leaves the list untouched.
func (s *Support) Remove(ctx context.Context, id int64) error {
	g := s.begin()
	err := s.api.DeleteTicket(ctx, id)
	if !s.finish(g) {
		s.lg.Debug("Discarding stale ticket delete", zap.Int64("ticket_id", id))
		return nil
	}
	if err != nil {
		s.mu.Unlock()
		s.notifier.Notify(notify.Error("Oops...", "Failed to delete ticket!"))
		return errors.Wrap(err, "delete ticket")
	}
	kept := s.tickets[:0]
	for _, t := range s.tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tickets = kept
	s.mu.Unlock()
	s.notifier.Notify(notify.Success("Deleted!", "The ticket has been deleted."))
	return nil
}
