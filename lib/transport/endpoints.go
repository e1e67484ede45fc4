package transport

import (
	cache "github.com/SporkHubr/echo-http-cache"
	"github.com/francoluca35/comandas-multiples-sub006/controllers"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/labstack/echo/v4"
)

// RegisterEndpoints wires the whole HTTP surface. Everything under
// /v2/restaurants is behind the JWT middleware, destructive and
// user-management routes additionally require the admin token.
func RegisterEndpoints(svc *service.BackofficeService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, adminMw echo.MiddlewareFunc, cacheClient *cache.Client) {
	e.POST("/auth", controllers.NewAuthController(svc).Auth, strictRateLimitMiddleware)
	if svc.Config.AllowAccountCreation {
		e.POST("/v2/users", controllers.NewCreateUserController(svc).CreateUser, strictRateLimitMiddleware, adminMw)
	}

	e.GET("/v2/info", controllers.NewInfoController(svc).GetInfo, cacheClient.Middleware())
	e.GET("/health", controllers.NewInfoController(svc).Health)

	secured.GET("/v2/restaurants/:restaurant_id/balance", controllers.NewBalanceController(svc).Snapshot)

	incomeCtrl := controllers.NewIncomeController(svc)
	secured.POST("/v2/restaurants/:restaurant_id/incomes", incomeCtrl.AddIncome)
	secured.GET("/v2/restaurants/:restaurant_id/incomes", incomeCtrl.GetIncomes)
	securedWithStrictRateLimit.DELETE("/v2/restaurants/:restaurant_id/incomes", incomeCtrl.ResetIncomes, adminMw)

	expenseCtrl := controllers.NewExpenseController(svc)
	secured.POST("/v2/restaurants/:restaurant_id/expenses", expenseCtrl.AddExpense)
	secured.GET("/v2/restaurants/:restaurant_id/expenses", expenseCtrl.GetExpenses)

	registerCtrl := controllers.NewRegisterController(svc)
	secured.POST("/v2/restaurants/:restaurant_id/registers", registerCtrl.OpenRegister)
	secured.GET("/v2/restaurants/:restaurant_id/registers", registerCtrl.GetRegisterOpenings)

	orderCtrl := controllers.NewOrderController(svc)
	secured.POST("/v2/restaurants/:restaurant_id/orders", orderCtrl.CreateOrder)
	secured.GET("/v2/restaurants/:restaurant_id/orders", orderCtrl.GetOrders)
	securedWithStrictRateLimit.POST("/v2/restaurants/:restaurant_id/orders/:id/settle", orderCtrl.SettleOrder)
}
