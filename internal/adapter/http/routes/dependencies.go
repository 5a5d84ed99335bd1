package routes

import (
	"context"
	"fmt"
	"log"

	"commerce_engine/internal/adapter/http/handlers"
	"commerce_engine/internal/adapter/persistence/memory"
	"commerce_engine/internal/adapter/persistence/repository"
	"commerce_engine/internal/domain/pricing"
	"commerce_engine/internal/infrastructure/billing"
	"commerce_engine/internal/infrastructure/config"
	"commerce_engine/internal/infrastructure/database"
	"commerce_engine/internal/infrastructure/notification"
	"commerce_engine/internal/infrastructure/payments"
	"commerce_engine/internal/infrastructure/scheduling"
	"commerce_engine/internal/infrastructure/webhookledger"
	"commerce_engine/internal/usecase"
	"commerce_engine/internal/usecase/interfaces"
	"commerce_engine/internal/usecase/messages"
)

type dependencies struct {
	proposals *handlers.ProposalHandler
	orders    *handlers.OrderHandler
	webhooks  *handlers.WebhookHandler
}

type stores struct {
	proposals interfaces.IProposalRepository
	orders    interfaces.IOrderRepository
	briefs    interfaces.IProjectBriefRepository
	projects  interfaces.IProjectRepository
	leads     interfaces.ILeadDirectory
}

// buildDependencies wires the workflow from configuration. Optional collaborators
// (billing, SMTP, Redis) degrade to logging or process-local fallbacks when unset.
func buildDependencies(ctx context.Context, cfg config.Config) (dependencies, error) {
	catalog := pricing.Default()
	if cfg.CatalogFile != "" {
		loaded, err := pricing.Load(cfg.CatalogFile)
		if err != nil {
			return dependencies{}, fmt.Errorf("load catalog: %w", err)
		}
		catalog = loaded
	}

	st, err := buildStores(ctx, cfg)
	if err != nil {
		return dependencies{}, err
	}

	composer := messages.NewComposer(catalog, cfg.AppBaseURL, cfg.Email.TeamName)
	notifier := buildNotifier(cfg.Email)

	var billingClient interfaces.IBillingServiceClient
	if cfg.Billing.URL != "" {
		billingClient = billing.NewClient(billing.Config{BaseURL: cfg.Billing.URL, Token: cfg.Billing.Token, Timeout: cfg.Billing.Timeout})
	} else {
		log.Printf("[routes] BILLING_SERVICE_URL not set; invoices disabled")
	}

	stripeGateway := payments.NewStripeGateway(payments.StripeConfig{
		SecretKey:     cfg.Payments.StripeSecretKey,
		WebhookSecret: cfg.Payments.StripeWebhookSecret,
		Currency:      cfg.Payments.Currency,
		BaseURL:       cfg.AppBaseURL,
		Mock:          cfg.Payments.Mock,
	})
	gateways := []interfaces.IPaymentGateway{stripeGateway}
	var checkout interfaces.IPaymentGateway = stripeGateway

	mpGateway, err := payments.NewMercadoPagoGateway(payments.MercadoPagoConfig{
		AccessToken:   cfg.Payments.MercadoPagoAccessToken,
		WebhookSecret: cfg.Payments.MercadoPagoWebhookSecret,
		BaseURL:       cfg.AppBaseURL,
		Mock:          cfg.Payments.Mock,
	})
	if err != nil {
		log.Printf("[routes] mercado pago gateway not configured err=%v", err)
	} else {
		gateways = append(gateways, mpGateway)
		if cfg.Payments.Provider == config.ProviderMercadoPago {
			checkout = mpGateway
		}
	}
	log.Printf("[routes] checkout provider=%s webhook providers=%d", checkout.Provider(), len(gateways))

	bookingURL := cfg.Email.BookingURL
	if bookingURL == "" {
		bookingURL = cfg.AppBaseURL + "/kickoff"
	}

	pipeline := usecase.NewFulfillmentPipeline(usecase.FulfillmentDependencies{
		Notifier: notifier,
		Messages: composer,
		Catalog:  catalog,
		Briefs:   st.briefs,
		Projects: st.projects,
		Team:     notification.NewTeamNotifier(notifier, composer, cfg.Email.AdminEmail),
		Kickoff:  scheduling.NewKickoffScheduler(notifier, composer, bookingURL),
	})

	orderUseCase := usecase.NewOrderUseCase(usecase.OrderDependencies{
		Repo:        st.orders,
		Catalog:     catalog,
		Billing:     billingClient,
		Gateway:     checkout,
		Notifier:    notifier,
		Messages:    composer,
		Fulfillment: pipeline,
	})
	proposalUseCase := usecase.NewProposalUseCase(st.proposals, st.leads, orderUseCase, notifier, composer)
	webhookUseCase := usecase.NewWebhookUseCase(orderUseCase, buildLedger(ctx, cfg.Redis), gateways...)

	return dependencies{
		proposals: handlers.NewProposalHandler(proposalUseCase),
		orders:    handlers.NewOrderHandler(orderUseCase),
		webhooks:  handlers.NewWebhookHandler(webhookUseCase),
	}, nil
}

func buildStores(ctx context.Context, cfg config.Config) (stores, error) {
	if cfg.StorageDriver == config.StorageMemory {
		leads, err := memory.LoadLeadDirectory(cfg.LeadsFile)
		if err != nil {
			return stores{}, fmt.Errorf("load leads: %w", err)
		}
		if cfg.LeadsFile == "" {
			log.Printf("[routes] LEADS_FILE not set; proposals cannot be sent in memory mode")
		}
		log.Printf("[routes] using in-memory storage leads_file=%s", cfg.LeadsFile)
		return stores{
			proposals: memory.NewProposalRepository(),
			orders:    memory.NewOrderRepository(),
			briefs:    memory.NewProjectBriefRepository(),
			projects:  memory.NewProjectRepository(),
			leads:     leads,
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return stores{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	t := cfg.DynamoDB
	return stores{
		proposals: repository.NewProposalDynamoRepository(ddb, t.ProposalsTable),
		orders:    repository.NewOrderDynamoRepository(ddb, t.OrdersTable),
		briefs:    repository.NewProjectBriefDynamoRepository(ddb, t.ProjectBriefsTable),
		projects:  repository.NewProjectDynamoRepository(ddb, t.ProjectsTable),
		leads:     repository.NewLeadDynamoDirectory(ddb, t.LeadsTable),
	}, nil
}

func buildNotifier(cfg config.Email) interfaces.INotifier {
	if cfg.SMTPHost == "" {
		log.Printf("[routes] SMTP_HOST not set; emails are logged only")
		return notification.LogNotifier{}
	}
	n, err := notification.NewSMTPNotifier(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		TLS:      cfg.SMTPTLS,
		From:     cfg.From,
	})
	if err != nil {
		log.Printf("[routes] smtp notifier unavailable err=%v; emails are logged only", err)
		return notification.LogNotifier{}
	}
	return n
}

func buildLedger(ctx context.Context, cfg config.Redis) interfaces.IWebhookEventLedger {
	if rdb := database.ConnectRedis(ctx, cfg); rdb != nil {
		return webhookledger.NewRedisLedger(rdb, cfg.DedupTTL)
	}
	return webhookledger.NewMemoryLedger(cfg.DedupTTL)
}
