package http

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billingUC "centime/internal/application/billing/usecases"
	subscriptionUC "centime/internal/application/subscription/usecases"
	userUC "centime/internal/application/user/usecases"
	"centime/internal/domain/billing"
	"centime/internal/domain/subscription"
	"centime/internal/domain/user"
	"centime/internal/infrastructure/auth"
	"centime/internal/infrastructure/config"
	"centime/internal/infrastructure/permission"
	"centime/internal/infrastructure/ratelimit"
	"centime/internal/infrastructure/repository"
	"centime/internal/interfaces/http/handlers"
	"centime/internal/shared/db"
	"centime/internal/shared/logger"
)

// Container wires repositories, use cases and handlers together. It is
// shared by the HTTP server and the worker process so both run the same
// use case instances against the same stack.
type Container struct {
	cfg *config.Config
	log logger.Interface

	// Repositories
	UserRepo         user.Repository
	ProfileRepo      user.ProfileRepository
	SubscriptionRepo subscription.Repository
	BillRepo         billing.BillRepository
	TransactionRepo  billing.TransactionRepository

	// Shared infrastructure
	TxManager   *db.TransactionManager
	Enforcer    *permission.Enforcer
	RateLimiter ratelimit.RateLimiter

	// Use cases
	EnsureBillsDue     *billingUC.EnsureBillsDueUseCase
	PayBill            *billingUC.PayBillUseCase
	CreateBill         *billingUC.CreateBillUseCase
	GetBill            *billingUC.GetBillUseCase
	ListBills          *billingUC.ListBillsUseCase
	ListTransactions   *billingUC.ListTransactionsUseCase
	CreateSubscription *subscriptionUC.CreateSubscriptionUseCase
	ToggleSubscription *subscriptionUC.ToggleSubscriptionUseCase
	UpdateSubscription *subscriptionUC.UpdateSubscriptionUseCase
	ListSubscriptions  *subscriptionUC.ListSubscriptionsUseCase
	CreateCustomer     *userUC.CreateCustomerUseCase
	GetCustomer        *userUC.GetCustomerUseCase
	ListCustomers      *userUC.ListCustomersUseCase
	UpdateProfile      *userUC.UpdateProfileUseCase

	// Handlers
	BillHandler         *handlers.BillHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	CustomerHandler     *handlers.CustomerHandler
}

// NewContainer builds the full dependency graph. redisClient may be nil,
// in which case rate limiting falls back to the in-memory limiter.
func NewContainer(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	c := &Container{cfg: cfg, log: log}

	c.UserRepo = repository.NewUserRepository(gormDB, log.Named("repo.user"))
	c.ProfileRepo = repository.NewProfileRepository(gormDB, log.Named("repo.profile"))
	c.SubscriptionRepo = repository.NewSubscriptionRepository(gormDB, log.Named("repo.subscription"))
	c.BillRepo = repository.NewBillRepository(gormDB, log.Named("repo.bill"))
	c.TransactionRepo = repository.NewTransactionRepository(gormDB, log.Named("repo.transaction"))

	c.TxManager = db.NewTransactionManager(gormDB)

	enforcer, err := permission.NewEnforcer(gormDB, log.Named("permission"))
	if err != nil {
		return nil, fmt.Errorf("failed to build permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return nil, fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.Enforcer = enforcer

	if redisClient != nil {
		c.RateLimiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		c.RateLimiter = ratelimit.NewMemoryRateLimiter()
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.Password.BcryptCost)
	factory := user.NewFactory(hasher)

	c.EnsureBillsDue = billingUC.NewEnsureBillsDueUseCase(c.SubscriptionRepo, c.BillRepo, c.TxManager, log.Named("uc.ensure_bills_due"))
	c.PayBill = billingUC.NewPayBillUseCase(c.BillRepo, c.TransactionRepo, c.TxManager, log.Named("uc.pay_bill"))
	c.CreateBill = billingUC.NewCreateBillUseCase(c.BillRepo, c.UserRepo, log.Named("uc.create_bill"))
	c.GetBill = billingUC.NewGetBillUseCase(c.BillRepo, c.TransactionRepo, log.Named("uc.get_bill"))
	c.ListBills = billingUC.NewListBillsUseCase(c.BillRepo, log.Named("uc.list_bills"))
	c.ListTransactions = billingUC.NewListTransactionsUseCase(c.TransactionRepo, log.Named("uc.list_transactions"))

	c.CreateSubscription = subscriptionUC.NewCreateSubscriptionUseCase(c.SubscriptionRepo, c.UserRepo, log.Named("uc.create_subscription"))
	c.ToggleSubscription = subscriptionUC.NewToggleSubscriptionUseCase(c.SubscriptionRepo, log.Named("uc.toggle_subscription"))
	c.UpdateSubscription = subscriptionUC.NewUpdateSubscriptionUseCase(c.SubscriptionRepo, log.Named("uc.update_subscription"))
	c.ListSubscriptions = subscriptionUC.NewListSubscriptionsUseCase(c.SubscriptionRepo, log.Named("uc.list_subscriptions"))

	c.CreateCustomer = userUC.NewCreateCustomerUseCase(c.UserRepo, c.ProfileRepo, factory, enforcer, c.TxManager, log.Named("uc.create_customer"))
	c.GetCustomer = userUC.NewGetCustomerUseCase(c.UserRepo, c.ProfileRepo, c.BillRepo, log.Named("uc.get_customer"))
	c.ListCustomers = userUC.NewListCustomersUseCase(c.UserRepo, c.BillRepo, log.Named("uc.list_customers"))
	c.UpdateProfile = userUC.NewUpdateProfileUseCase(c.ProfileRepo, log.Named("uc.update_profile"))

	c.BillHandler = handlers.NewBillHandler(
		c.CreateBill, c.GetBill, c.ListBills, c.PayBill, c.EnsureBillsDue, c.ListTransactions,
		log.Named("handler.bill"),
	)
	c.SubscriptionHandler = handlers.NewSubscriptionHandler(
		c.CreateSubscription, c.ToggleSubscription, c.UpdateSubscription, c.ListSubscriptions,
		log.Named("handler.subscription"),
	)
	c.CustomerHandler = handlers.NewCustomerHandler(
		c.CreateCustomer, c.GetCustomer, c.ListCustomers, c.UpdateProfile,
		log.Named("handler.customer"),
	)

	return c, nil
}
