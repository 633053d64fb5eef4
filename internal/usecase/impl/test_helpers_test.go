package impl

import (
	"context"

	"tally/internal/domain/entity"
	"tally/internal/domain/repository"
)

// In-memory repository fakes shared across the service tests.

type fakeReportingRepo struct {
	totals           entity.ReportTotals
	products         []entity.TopProduct
	customers        []entity.TopCustomer
	categories       []entity.CategoryRevenue
	daily            []entity.DailyRevenue
	unresolved       int
	unresolvedOrders int
	lowStock         []entity.LowStockItem
	err              error
	seenLimits       []int
	seenRanges       []entity.DateRange
}

func (f *fakeReportingRepo) OrderTotals(_ context.Context, dateRange entity.DateRange) (entity.ReportTotals, error) {
	f.seenRanges = append(f.seenRanges, dateRange)

	return f.totals, f.err
}

func (f *fakeReportingRepo) TopProducts(_ context.Context, _ entity.DateRange, limit int) ([]entity.TopProduct, error) {
	f.seenLimits = append(f.seenLimits, limit)

	return f.products, f.err
}

func (f *fakeReportingRepo) TopCustomers(_ context.Context, _ entity.DateRange, limit int) ([]entity.TopCustomer, error) {
	f.seenLimits = append(f.seenLimits, limit)

	return f.customers, f.err
}

func (f *fakeReportingRepo) RevenueByCategory(_ context.Context, _ entity.DateRange) ([]entity.CategoryRevenue, error) {
	return f.categories, f.err
}

func (f *fakeReportingRepo) DailyRevenue(_ context.Context, _ entity.DateRange) ([]entity.DailyRevenue, error) {
	return f.daily, f.err
}

func (f *fakeReportingRepo) UnresolvedLines(_ context.Context, _ entity.DateRange) (int, error) {
	return f.unresolved, f.err
}

func (f *fakeReportingRepo) UnresolvedOrders(_ context.Context, _ entity.DateRange) (int, error) {
	return f.unresolvedOrders, f.err
}

func (f *fakeReportingRepo) LowStock(_ context.Context) ([]entity.LowStockItem, error) {
	return f.lowStock, f.err
}

type fakeOrderRepo struct {
	orderFacts  []entity.OrderFact
	lineFacts   []entity.LineFact
	details     *entity.OrderDetails
	listItems   []entity.OrderListItem
	created     []*entity.SalesOrder
	statuses    map[int64]string
	err         error
	sawDeadline bool
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, order *entity.SalesOrder) error {
	if f.err != nil {
		return f.err
	}
	order.ID = int64(len(f.created) + 1)
	f.created = append(f.created, order)

	return nil
}

func (f *fakeOrderRepo) FindOrderByID(_ context.Context, id int64) (*entity.SalesOrder, error) {
	for _, order := range f.created {
		if order.ID == id {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (f *fakeOrderRepo) FindOrderDetails(_ context.Context, _ int64) (*entity.OrderDetails, error) {
	if f.details == nil {
		return nil, repository.ErrOrderNotFound
	}

	return f.details, f.err
}

func (f *fakeOrderRepo) ListOrders(_ context.Context, _ repository.OrderListQuery) ([]entity.OrderListItem, error) {
	return f.listItems, f.err
}

func (f *fakeOrderRepo) UpdateOrderStatus(_ context.Context, id int64, status string) error {
	if f.err != nil {
		return f.err
	}
	if f.statuses == nil {
		f.statuses = make(map[int64]string)
	}
	f.statuses[id] = status

	return nil
}

func (f *fakeOrderRepo) DeleteOrder(_ context.Context, _ int64) error {
	return f.err
}

func (f *fakeOrderRepo) FindOrderFacts(ctx context.Context, _ entity.DateRange) ([]entity.OrderFact, error) {
	_, f.sawDeadline = ctx.Deadline()

	return f.orderFacts, f.err
}

func (f *fakeOrderRepo) FindLineFacts(_ context.Context, _ entity.DateRange) ([]entity.LineFact, error) {
	return f.lineFacts, f.err
}

type fakeProductRepo struct {
	products    map[int64]*entity.Product
	updated     []*entity.Product
	err         error
	sawDeadline bool
}

func (f *fakeProductRepo) CreateProduct(_ context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	product.ID = int64(len(f.products) + 1)
	if f.products == nil {
		f.products = make(map[int64]*entity.Product)
	}
	f.products[product.ID] = product

	return nil
}

func (f *fakeProductRepo) FindProductByID(_ context.Context, id int64) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	product, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	clone := *product

	return &clone, nil
}

func (f *fakeProductRepo) FindProducts(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return f.allProducts(), f.err
}

func (f *fakeProductRepo) UpdateProduct(_ context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	f.products[product.ID] = product
	f.updated = append(f.updated, product)

	return nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id)

	return nil
}

func (f *fakeProductRepo) FindAllActiveProducts(ctx context.Context) ([]*entity.Product, error) {
	_, f.sawDeadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}

	active := make([]*entity.Product, 0, len(f.products))
	for _, product := range f.products {
		if product.IsActive {
			active = append(active, product)
		}
	}

	return active, nil
}

func (f *fakeProductRepo) allProducts() []*entity.Product {
	all := make([]*entity.Product, 0, len(f.products))
	for _, product := range f.products {
		all = append(all, product)
	}

	return all
}

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
	err       error
}

func (f *fakeCustomerRepo) CreateCustomer(_ context.Context, customer *entity.Customer) error {
	if f.err != nil {
		return f.err
	}
	customer.ID = int64(len(f.customers) + 1)
	if f.customers == nil {
		f.customers = make(map[int64]*entity.Customer)
	}
	f.customers[customer.ID] = customer

	return nil
}

func (f *fakeCustomerRepo) FindCustomerByID(_ context.Context, id int64) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	customer, ok := f.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}

	return customer, nil
}

func (f *fakeCustomerRepo) FindAllCustomers(_ context.Context) ([]*entity.Customer, error) {
	all := make([]*entity.Customer, 0, len(f.customers))
	for _, customer := range f.customers {
		all = append(all, customer)
	}

	return all, f.err
}

func (f *fakeCustomerRepo) UpdateCustomer(_ context.Context, customer *entity.Customer) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.customers[customer.ID]; !ok {
		return repository.ErrCustomerNotFound
	}
	f.customers[customer.ID] = customer

	return nil
}

func (f *fakeCustomerRepo) DeleteCustomer(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.customers[id]; !ok {
		return repository.ErrCustomerNotFound
	}
	delete(f.customers, id)

	return nil
}

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
	err        error
}

func (f *fakeCategoryRepo) CreateCategory(_ context.Context, category *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	category.ID = int64(len(f.categories) + 1)
	if f.categories == nil {
		f.categories = make(map[int64]*entity.Category)
	}
	f.categories[category.ID] = category

	return nil
}

func (f *fakeCategoryRepo) FindCategoryByID(_ context.Context, id int64) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	category, ok := f.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return category, nil
}

func (f *fakeCategoryRepo) FindAllCategories(_ context.Context) ([]*entity.Category, error) {
	all := make([]*entity.Category, 0, len(f.categories))
	for _, category := range f.categories {
		all = append(all, category)
	}

	return all, f.err
}

func (f *fakeCategoryRepo) UpdateCategory(_ context.Context, category *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.categories[category.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	f.categories[category.ID] = category

	return nil
}

func (f *fakeCategoryRepo) DeleteCategory(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(f.categories, id)

	return nil
}

// fakeTxManager runs the unit of work directly against the shared fakes,
// with no transactional behavior.
type fakeTxManager struct {
	orderRepo    *fakeOrderRepo
	productRepo  *fakeProductRepo
	customerRepo *fakeCustomerRepo
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) NewOrderRepository() repository.OrderRepository {
	return f.orderRepo
}

func (f *fakeTxManager) NewProductRepository() repository.ProductRepository {
	return f.productRepo
}

func (f *fakeTxManager) NewCustomerRepository() repository.CustomerRepository {
	return f.customerRepo
}
