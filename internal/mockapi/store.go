package mockapi

import (
	"sync"

	"tableside/internal/domain/floor"
	"tableside/internal/domain/order"
	"tableside/internal/domain/user"
	"tableside/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// Account is a stored user with credentials.
type Account struct {
	ID           int
	Username     string
	Email        string
	PasswordHash []byte
	Role         user.Role
}

// StoredReservation keeps the submitter so responses can denormalize the
// username.
type StoredReservation struct {
	ID          int
	TableID     int
	Datetime    string
	Description string
	Status      string
	UserID      int
}

// StoredOrder is an open or paid order with its line items.
type StoredOrder struct {
	ID      int
	TableID int
	Paid    bool
	Items   []order.OrderItem
}

// Store is the whole backend state behind one RWMutex. Handler methods take
// the lock coarse-grained; this backend exists for development and tests, not
// for throughput.
type Store struct {
	mu sync.RWMutex

	accounts     map[int]*Account
	tables       map[int]*floor.Table
	zones        map[int]*floor.Zone
	menu         map[int]*order.MenuItem
	reservations map[int]*StoredReservation
	orders       map[int]*StoredOrder

	nextID map[string]int
}

func NewStore() *Store {
	return &Store{
		accounts:     make(map[int]*Account),
		tables:       make(map[int]*floor.Table),
		zones:        make(map[int]*floor.Zone),
		menu:         make(map[int]*order.MenuItem),
		reservations: make(map[int]*StoredReservation),
		orders:       make(map[int]*StoredOrder),
		nextID:       make(map[string]int),
	}
}

func (s *Store) seq(kind string) int {
	s.nextID[kind]++
	return s.nextID[kind]
}

func (s *Store) CreateAccount(username, email, password string, role user.Role) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Username == username {
			return nil, errs.New("a user with that username already exists")
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}
	a := &Account{
		ID:           s.seq("account"),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	s.accounts[a.ID] = a
	return a, nil
}

func (s *Store) Authenticate(username, password string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Username == username {
			if bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) == nil {
				return a, true
			}
			return nil, false
		}
	}
	return nil, false
}

func (s *Store) Account(id int) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok
}

// activeOrderLocked finds the unpaid order for a table. Callers hold the lock.
func (s *Store) activeOrderLocked(tableID int) (*StoredOrder, bool) {
	for _, o := range s.orders {
		if o.TableID == tableID && !o.Paid {
			return o, true
		}
	}
	return nil, false
}

func orderTotal(o *StoredOrder) float64 {
	var total float64
	for _, it := range o.Items {
		total += it.MenuItemDetail.Price * float64(it.Quantity)
	}
	return total
}

// tableView renders a table row, optionally with the embedded active-order
// summary.
func (s *Store) tableView(t *floor.Table, withOrder bool) floor.Table {
	view := *t
	view.ActiveOrder = nil
	if withOrder {
		if o, ok := s.activeOrderLocked(t.ID); ok {
			view.ActiveOrder = &floor.OrderSummary{
				OrderID:    o.ID,
				ItemsCount: len(o.Items),
				Total:      orderTotal(o),
			}
		}
	}
	return view
}

// Seed installs a development fixture: three accounts (manager, waiter,
// client, password "tableside-dev"), a small floor and a short menu.
func (s *Store) Seed() error {
	for _, acc := range []struct {
		username string
		role     user.Role
	}{
		{"manager", user.RoleManager},
		{"waiter", user.RoleWaiter},
		{"client", user.RoleClient},
	} {
		if _, err := s.CreateAccount(acc.username, acc.username+"@example.com", "tableside-dev", acc.role); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range []floor.Table{
		{Number: 1, Chairs: 4, Status: floor.StatusAvailable, Left: 40, Top: 40},
		{Number: 2, Chairs: 6, Status: floor.StatusAvailable, Left: 260, Top: 40},
		{Number: 3, Chairs: 8, Status: floor.StatusAvailable, Left: 500, Top: 60},
		{Number: 4, Chairs: 2, Status: floor.StatusAvailable, Left: 120, Top: 300},
	} {
		t.ID = s.seq("table")
		stored := t
		s.tables[t.ID] = &stored
	}
	for _, z := range []floor.Zone{
		{Type: floor.ZoneGlass, Left: 0, Top: 0, Width: 200, Height: 140},
		{Type: floor.ZoneTerrace, Left: 450, Top: 280, Width: 280, Height: 160},
	} {
		z.ID = s.seq("zone")
		stored := z
		s.zones[z.ID] = &stored
	}
	for _, m := range []order.MenuItem{
		{Code: "esp", Name: "Espresso", Price: 80, ItemType: "drink"},
		{Code: "cap", Name: "Cappuccino", Price: 120, ItemType: "drink"},
		{Code: "marg", Name: "Pizza Margherita", Price: 350, ItemType: "food"},
		{Code: "carb", Name: "Pasta Carbonara", Price: 390, ItemType: "food"},
		{Code: "tira", Name: "Tiramisu", Price: 180, ItemType: "dessert"},
	} {
		m.ID = s.seq("menu")
		stored := m
		s.menu[m.ID] = &stored
	}
	return nil
}
