package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/it22117250/ITPM-Project/models"
	"github.com/it22117250/ITPM-Project/repository"
)

// fakeStore is an in-memory repository.Store. Transaction snapshots state
// and restores it when fn fails, mirroring database rollback.
type fakeStore struct {
	users      map[uuid.UUID]*models.User
	suppliers  map[uuid.UUID]*models.Supplier
	categories map[uuid.UUID]*models.Category
	products   map[uuid.UUID]*models.Product
	orders     map[uuid.UUID]*models.Order
	seq        map[string]int64

	statusUpdates []string
	decrements    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      map[uuid.UUID]*models.User{},
		suppliers:  map[uuid.UUID]*models.Supplier{},
		categories: map[uuid.UUID]*models.Category{},
		products:   map[uuid.UUID]*models.Product{},
		orders:     map[uuid.UUID]*models.Order{},
		seq:        map[string]int64{},
	}
}

func (f *fakeStore) addProduct(name string, qty int) *models.Product {
	p := &models.Product{ID: uuid.New(), Name: name, Quantity: qty}
	f.products[p.ID] = p
	return p
}

func (f *fakeStore) addOrder(status string, items models.LineItems) *models.Order {
	o := &models.Order{ID: uuid.New(), OrderSlug: "ORD001", Status: status, Items: items}
	f.orders[o.ID] = o
	return o
}

func (f *fakeStore) Users() repository.UserRepository         { return &fakeUserRepo{f} }
func (f *fakeStore) Suppliers() repository.SupplierRepository { return &fakeSupplierRepo{f} }
func (f *fakeStore) Categories() repository.CategoryRepository {
	return &fakeCategoryRepo{f}
}
func (f *fakeStore) Products() repository.ProductRepository { return &fakeProductRepo{f} }
func (f *fakeStore) Orders() repository.OrderRepository     { return &fakeOrderRepo{f} }
func (f *fakeStore) Slugs() repository.SlugRepository       { return &fakeSlugRepo{f} }

func (f *fakeStore) Transaction(ctx context.Context, fn func(repository.Store) error) error {
	productSnap := map[uuid.UUID]models.Product{}
	for id, p := range f.products {
		productSnap[id] = *p
	}
	orderSnap := map[uuid.UUID]models.Order{}
	for id, o := range f.orders {
		orderSnap[id] = *o
	}
	seqSnap := map[string]int64{}
	for k, v := range f.seq {
		seqSnap[k] = v
	}

	if err := fn(f); err != nil {
		f.products = map[uuid.UUID]*models.Product{}
		for id := range productSnap {
			p := productSnap[id]
			f.products[id] = &p
		}
		f.orders = map[uuid.UUID]*models.Order{}
		for id := range orderSnap {
			o := orderSnap[id]
			f.orders[id] = &o
		}
		f.seq = seqSnap
		return err
	}
	return nil
}

type fakeSlugRepo struct{ s *fakeStore }

func (r *fakeSlugRepo) Next(ctx context.Context, prefix string) (int64, error) {
	r.s.seq[prefix]++
	return r.s.seq[prefix], nil
}

func (r *fakeSlugRepo) Seed(ctx context.Context, prefix string, value int64) error {
	if r.s.seq[prefix] < value {
		r.s.seq[prefix] = value
	}
	return nil
}

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) FindAll(ctx context.Context, page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	for _, o := range r.s.orders {
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderSlug < orders[j].OrderSlug })
	return orders, int64(len(orders)), nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	r.s.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	o, ok := r.s.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := updates["status"]; ok {
		o.Status = v.(string)
	}
	if v, ok := updates["customer_name"]; ok {
		o.CustomerName = v.(string)
	}
	if v, ok := updates["city"]; ok {
		o.City = v.(string)
	}
	if v, ok := updates["paid"]; ok {
		o.Paid = v.(bool)
	}
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.s.statusUpdates = append(r.s.statusUpdates, status)
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.s.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) FindAll(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	for _, p := range r.s.products {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ProductSlug < products[j].ProductSlug })
	return products, int64(len(products)), nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	p, ok := r.s.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := updates["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := updates["quantity"]; ok {
		switch q := v.(type) {
		case int:
			p.Quantity = q
		case float64:
			p.Quantity = int(q)
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.s.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementQuantity(ctx context.Context, id uuid.UUID, qty int) error {
	p, ok := r.s.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	if p.Quantity < qty {
		return repository.ErrInsufficientStock
	}
	p.Quantity -= qty
	r.s.decrements++
	return nil
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	for _, u := range r.s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := updates["password"]; ok {
		u.Password = v.(string)
	}
	if v, ok := updates["name"]; ok {
		u.Name = v.(string)
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

type fakeSupplierRepo struct{ s *fakeStore }

func (r *fakeSupplierRepo) FindAll(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	for _, s := range r.s.suppliers {
		suppliers = append(suppliers, *s)
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].SupplierSlug < suppliers[j].SupplierSlug })
	return suppliers, nil
}

func (r *fakeSupplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	s, ok := r.s.suppliers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	cp := *supplier
	r.s.suppliers[supplier.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	s, ok := r.s.suppliers[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := updates["name"]; ok {
		s.Name = v.(string)
	}
	return nil
}

func (r *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.s.suppliers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.suppliers, id)
	return nil
}

type fakeCategoryRepo struct{ s *fakeStore }

func (r *fakeCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	for _, c := range r.s.categories {
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	cp := *category
	r.s.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	c, ok := r.s.categories[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := updates["name"]; ok {
		c.Name = v.(string)
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.s.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.categories, id)
	return nil
}
