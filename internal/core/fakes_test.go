package core

import (
	"context"
	"fmt"

	"bookify-backend-go/internal/db"
	"bookify-backend-go/internal/models"
)

// In-memory fakes for the db interfaces, shared by the service tests.

type fakeServiceRepo struct {
	services map[string]*models.Service
	nextID   int
	created  []*models.Service
	updated  []*models.Service
	deleted  []string
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[string]*models.Service)}
	for _, svc := range services {
		repo.services[svc.ID] = svc
	}
	return repo
}

func (r *fakeServiceRepo) List(ctx context.Context, limit int) ([]*models.Service, error) {
	out := make([]*models.Service, 0, len(r.services))
	for _, svc := range r.services {
		out = append(out, svc)
	}
	return out, nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	svc, ok := r.services[serviceID]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *svc
	return &copied, nil
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *models.Service) (string, error) {
	r.nextID++
	service.ID = fmt.Sprintf("svc-%d", r.nextID)
	r.services[service.ID] = service
	r.created = append(r.created, service)
	return service.ID, nil
}

// Update mirrors the real repository: a full-document set that replaces
// whatever is stored and never reports a missing document.
func (r *fakeServiceRepo) Update(ctx context.Context, service *models.Service) error {
	r.services[service.ID] = service
	r.updated = append(r.updated, service)
	return nil
}

// Delete mirrors the real repository, which checks existence before the
// Firestore delete so a missing document is reported.
func (r *fakeServiceRepo) Delete(ctx context.Context, serviceID string) error {
	if _, ok := r.services[serviceID]; !ok {
		return db.ErrNotFound
	}
	delete(r.services, serviceID)
	r.deleted = append(r.deleted, serviceID)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
	nextID     int
	created    []*models.Category
	deleted    []string
}

func newFakeCategoryRepo(categories ...*models.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[string]*models.Category)}
	for _, cat := range categories {
		repo.categories[cat.ID] = cat
	}
	return repo
}

func (r *fakeCategoryRepo) List(ctx context.Context, limit int) ([]*models.Category, error) {
	out := make([]*models.Category, 0, len(r.categories))
	for _, cat := range r.categories {
		out = append(out, cat)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) (string, error) {
	r.nextID++
	category.ID = fmt.Sprintf("cat-%d", r.nextID)
	r.categories[category.ID] = category
	r.created = append(r.created, category)
	return category.ID, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, categoryID string) error {
	if _, ok := r.categories[categoryID]; !ok {
		return db.ErrNotFound
	}
	delete(r.categories, categoryID)
	r.deleted = append(r.deleted, categoryID)
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	nextID   int
	created  []*models.Booking
	updated  []*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	r.nextID++
	booking.ID = fmt.Sprintf("bkg-%d", r.nextID)
	r.bookings[booking.ID] = booking
	r.created = append(r.created, booking)
	return booking.ID, nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

// Update mirrors the real repository: a full-document set that replaces
// whatever is stored and never reports a missing document.
func (r *fakeBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	r.bookings[booking.ID] = booking
	r.updated = append(r.updated, booking)
	return nil
}

func (r *fakeBookingRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		if b.UserID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListAll(ctx context.Context, limit int) ([]*models.Booking, error) {
	out := make([]*models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
	upserts  []map[string]interface{}
}

func newFakeProfileRepo(profiles ...*models.Profile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, uid string) (*models.Profile, error) {
	p, ok := r.profiles[uid]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, uid string, fields map[string]interface{}) error {
	r.upserts = append(r.upserts, fields)
	p, ok := r.profiles[uid]
	if !ok {
		p = &models.Profile{ID: uid}
		r.profiles[uid] = p
	}
	if v, ok := fields["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := fields["email"]; ok {
		p.Email = v.(string)
	}
	if v, ok := fields["phone"]; ok {
		p.Phone = v.(string)
	}
	if v, ok := fields["address"]; ok {
		p.Address = v.(string)
	}
	return nil
}

func (r *fakeProfileRepo) ListAll(ctx context.Context, limit int) (map[string]*models.Profile, error) {
	out := make(map[string]*models.Profile, len(r.profiles))
	for uid, p := range r.profiles {
		copied := *p
		out[uid] = &copied
	}
	return out, nil
}

type fakeRoleRepo struct {
	roles map[string]models.Role
	sets  map[string]models.Role
}

func newFakeRoleRepo(roles map[string]models.Role) *fakeRoleRepo {
	if roles == nil {
		roles = make(map[string]models.Role)
	}
	return &fakeRoleRepo{roles: roles, sets: make(map[string]models.Role)}
}

func (r *fakeRoleRepo) GetByID(ctx context.Context, uid string) (*models.RoleAssignment, error) {
	role, ok := r.roles[uid]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &models.RoleAssignment{ID: uid, Role: role}, nil
}

func (r *fakeRoleRepo) Set(ctx context.Context, uid string, role models.Role) error {
	r.roles[uid] = role
	r.sets[uid] = role
	return nil
}

func (r *fakeRoleRepo) ListAll(ctx context.Context, limit int) (map[string]models.Role, error) {
	out := make(map[string]models.Role, len(r.roles))
	for uid, role := range r.roles {
		out[uid] = role
	}
	return out, nil
}

type fakeAccountDirectory struct {
	accounts  []models.Account
	listCalls int
}

func (d *fakeAccountDirectory) ListAccounts(ctx context.Context, limit int) ([]models.Account, error) {
	d.listCalls++
	return d.accounts, nil
}

func (d *fakeAccountDirectory) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	for _, a := range d.accounts {
		if a.Email == email {
			copied := a
			return &copied, nil
		}
	}
	return nil, db.ErrNotFound
}

func (d *fakeAccountDirectory) CreateAccount(ctx context.Context, email, password, displayName string) (*models.Account, error) {
	account := models.Account{ID: fmt.Sprintf("uid-%d", len(d.accounts)+1), Email: email, DisplayName: displayName}
	d.accounts = append(d.accounts, account)
	return &account, nil
}

// newTestIdentity wires an identity service over the given role assignments.
func newTestIdentity(roles map[string]models.Role) IdentityService {
	return NewIdentityService(newFakeRoleRepo(roles), newFakeProfileRepo(), &fakeAccountDirectory{}, 0)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func statusPtr(s models.BookingStatus) *models.BookingStatus { return &s }
