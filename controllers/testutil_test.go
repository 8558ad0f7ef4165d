package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/resenaros/Ecommerce-API/controllers"
	"github.com/resenaros/Ecommerce-API/models"
	"github.com/resenaros/Ecommerce-API/repositories"
	"github.com/resenaros/Ecommerce-API/services"
)

// memStore is an in-memory stand-in for the database, mirroring its
// constraints: unique email, unique (order_id, product_id) pair, and the
// restrict/cascade delete rules from the schema.
type memStore struct {
	mu       sync.Mutex
	users    map[int]models.User
	products map[int]models.Product
	orders   map[int]models.Order
	links    [][2]int

	nextUser    int
	nextProduct int
	nextOrder   int
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[int]models.User{},
		products:    map[int]models.Product{},
		orders:      map[int]models.Order{},
		nextUser:    1,
		nextProduct: 1,
		nextOrder:   1,
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	user.ID = r.s.nextUser
	r.s.nextUser++
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := []models.User{}
	for _, u := range r.s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id int) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	for id, u := range r.s.users {
		if id != user.ID && u.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repositories.ErrNotFound
	}
	for _, o := range r.s.orders {
		if o.UserID == id {
			return repositories.ErrForeignKeyViolation
		}
	}
	delete(r.s.users, id)
	return nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product.ID = r.s.nextProduct
	r.s.nextProduct++
	r.s.products[product.ID] = *product
	return nil
}

func (r *memProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	products := []models.Product{}
	for _, p := range r.s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id int) (*models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *memProductRepo) Update(_ context.Context, product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return repositories.ErrNotFound
	}
	for _, link := range r.s.links {
		if link[1] == id {
			return repositories.ErrForeignKeyViolation
		}
	}
	delete(r.s.products, id)
	return nil
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(_ context.Context, order *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[order.UserID]; !ok {
		return repositories.ErrForeignKeyViolation
	}
	order.ID = r.s.nextOrder
	r.s.nextOrder++
	r.s.orders[order.ID] = *order
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id int) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &o, nil
}

func (r *memOrderRepo) FindByUser(_ context.Context, userID int) ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	orders := []models.Order{}
	for _, o := range r.s.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *memOrderRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.orders, id)
	kept := r.s.links[:0]
	for _, link := range r.s.links {
		if link[0] != id {
			kept = append(kept, link)
		}
	}
	r.s.links = kept
	return nil
}

func (r *memOrderRepo) AddProduct(_ context.Context, orderID, productID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[orderID]; !ok {
		return repositories.ErrForeignKeyViolation
	}
	if _, ok := r.s.products[productID]; !ok {
		return repositories.ErrForeignKeyViolation
	}
	for _, link := range r.s.links {
		if link[0] == orderID && link[1] == productID {
			return repositories.ErrDuplicateKey
		}
	}
	r.s.links = append(r.s.links, [2]int{orderID, productID})
	return nil
}

func (r *memOrderRepo) RemoveProduct(_ context.Context, orderID, productID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, link := range r.s.links {
		if link[0] == orderID && link[1] == productID {
			r.s.links = append(r.s.links[:i], r.s.links[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *memOrderRepo) FindProducts(_ context.Context, orderID int) ([]models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	products := []models.Product{}
	for _, link := range r.s.links {
		if link[0] == orderID {
			products = append(products, r.s.products[link[1]])
		}
	}
	return products, nil
}

// newTestRouter wires the real controllers and services over the in-memory
// store, using the same route table as routes.SetupRoutes.
func newTestRouter() (*gin.Engine, *memStore) {
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	userRepo := &memUserRepo{s: store}
	productRepo := &memProductRepo{s: store}
	orderRepo := &memOrderRepo{s: store}

	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	productCtrl := controllers.NewProductController(services.NewProductService(productRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, userRepo, productRepo, nil))

	router := gin.New()
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	users := router.Group("/users")
	{
		users.GET("", userCtrl.GetAllUsers)
		users.GET("/:id", userCtrl.GetUserByID)
		users.POST("", userCtrl.CreateUser)
		users.PUT("/:id", userCtrl.UpdateUser)
		users.DELETE("/:id", userCtrl.DeleteUser)
	}

	products := router.Group("/products")
	{
		products.GET("", productCtrl.GetAllProducts)
		products.GET("/:id", productCtrl.GetProductByID)
		products.POST("", productCtrl.CreateProduct)
		products.PUT("/:id", productCtrl.UpdateProduct)
		products.DELETE("/:id", productCtrl.DeleteProduct)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("/user/:user_id", orderCtrl.GetOrdersByUser)
		orders.GET("/:id", orderCtrl.GetOrderByID)
		orders.DELETE("/:id", orderCtrl.DeleteOrder)
		orders.PUT("/:id/add_product/:product_id", orderCtrl.AddProduct)
		orders.DELETE("/:id/remove_product/:product_id", orderCtrl.RemoveProduct)
		orders.GET("/:id/products", orderCtrl.GetOrderProducts)
	}

	return router, store
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeData unpacks the {success, message, data} envelope into v.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	if v != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, v))
	}
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	return body
}
