package internal

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// contactPattern accepts digits, +, -, and spaces, 6 to 20 characters
var contactPattern = regexp.MustCompile(`^[0-9+\- ]{6,20}$`)

// firstResourceID seeds the id counter; loaded resources with higher numeric
// ids push it further up so ids stay unique across restarts.
const firstResourceID = 1000

// Ledger owns the in-memory resource set and its availability state. Every
// mutating operation holds the single lock for the whole mutate-then-persist
// sequence, so a concurrent Save never observes a half-applied change.
type Ledger struct {
	mu        sync.Mutex
	resources []Resource
	nextID    int
	store     *ResourceStore
	gate      PaymentGate
}

// NewLedger creates an empty ledger backed by store, charging through gate
func NewLedger(store *ResourceStore, gate PaymentGate) *Ledger {
	return &Ledger{
		resources: make([]Resource, 0),
		nextID:    firstResourceID,
		store:     store,
		gate:      gate,
	}
}

// Load replaces the in-memory set with the persisted one and seeds the id
// counter above any numeric id present.
func (l *Ledger) Load() error {
	loaded, err := l.store.Load()
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.resources = loaded
	l.nextID = firstResourceID
	for _, r := range loaded {
		if n, err := strconv.Atoi(r.ID); err == nil && n >= l.nextID {
			l.nextID = n + 1
		}
	}
	return nil
}

// Save persists the full current set. Callers trigger this explicitly after
// mutations; the ledger never saves on its own.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Save(l.resources)
}

// Add validates and lists a new resource. It either fully applies or fails
// with a ValidationError; the new resource starts out available.
func (l *Ledger) Add(name, ownerName, ownerContact, ownerEmail string) (*Resource, error) {
	name = strings.TrimSpace(name)
	ownerName = strings.TrimSpace(ownerName)
	ownerContact = strings.TrimSpace(ownerContact)
	ownerEmail = strings.TrimSpace(ownerEmail)

	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if ownerName == "" {
		return nil, &ValidationError{Field: "owner", Reason: "must not be empty"}
	}
	if ownerContact == "" {
		return nil, &ValidationError{Field: "contact", Reason: "must not be empty"}
	}
	if !contactPattern.MatchString(ownerContact) {
		return nil, &ValidationError{Field: "contact", Reason: "must be 6-20 characters of digits, +, - or spaces"}
	}
	if ownerEmail != "" && !IsPlausibleEmail(ownerEmail) {
		return nil, &ValidationError{Field: "email", Reason: "does not look like an email address"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	r := Resource{
		ID:           strconv.Itoa(l.nextID),
		Name:         name,
		OwnerName:    ownerName,
		OwnerContact: ownerContact,
		OwnerEmail:   strings.ToLower(ownerEmail),
		Available:    true,
	}
	l.nextID++
	l.resources = append(l.resources, r)

	LogDebug("added resource %s (%s)", r.ID, r.Name)
	return &r, nil
}

// Borrow marks a resource taken on behalf of requesterEmail. The order is
// fixed: validate, confirm availability, charge the gate, then mutate. A
// declined charge aborts with PaymentFailedError and no state change.
func (l *Ledger) Borrow(id, requesterEmail string, amount float64, note string) error {
	if requesterEmail == "" {
		return &AuthRequiredError{Op: "borrow"}
	}
	if amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	r := l.findLocked(id)
	if r == nil {
		return &NotFoundError{ID: id}
	}
	if !r.Available {
		return &AlreadyTakenError{ID: id}
	}

	receipt, ok := l.gate.Charge(amount, note)
	if !ok {
		return &PaymentFailedError{ResourceID: id, Amount: amount}
	}

	r.Available = false
	LogInfo("borrowed resource %s by %s (ref %s)", id, requesterEmail, receipt.Reference)
	return nil
}

// GiveBack marks a taken resource available again
func (l *Ledger) GiveBack(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := l.findLocked(id)
	if r == nil {
		return &NotFoundError{ID: id}
	}
	if r.Available {
		return &AlreadyAvailableError{ID: id}
	}

	r.Available = true
	LogInfo("returned resource %s", id)
	return nil
}

// Remove hard-deletes a resource from either state. Authorization is the
// caller's decision; the ledger exposes the raw operation.
func (l *Ledger) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.resources {
		if l.resources[i].ID == id {
			l.resources = append(l.resources[:i], l.resources[i+1:]...)
			LogInfo("removed resource %s", id)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// FindByID returns a copy of the resource with the given id
func (l *Ledger) FindByID(id string) (Resource, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if r := l.findLocked(id); r != nil {
		return *r, true
	}
	return Resource{}, false
}

// Resources returns a copy of the current set in insertion order
func (l *Ledger) Resources() []Resource {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Resource, len(l.resources))
	copy(out, l.resources)
	return out
}

// findLocked returns a pointer into the backing slice; callers must hold mu
func (l *Ledger) findLocked(id string) *Resource {
	for i := range l.resources {
		if l.resources[i].ID == id {
			return &l.resources[i]
		}
	}
	return nil
}
