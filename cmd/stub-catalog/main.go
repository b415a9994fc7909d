// stub-catalog stands in for the external catalog API and auth proxy during
// local development: an in-memory product collection behind the
// whole-collection GET/PUT contract, plus a configurable /api/user-info
// endpoint that emits the gap-auth identity header.
package main

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"data-marketplace/internal/catalog"
	"data-marketplace/internal/identity"
	"data-marketplace/internal/logging"
)

type stubStore struct {
	mu       sync.RWMutex
	products []catalog.Product
}

func (s *stubStore) list() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *stubStore) replace(products []catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

func main() {
	_ = godotenv.Load()
	log := logging.New(getenv("LOG_LEVEL", "info"), getenv("LOG_FORMAT", "console"))

	store := &stubStore{products: seedProducts(log)}

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	app.Get("/api/data-products", func(c *fiber.Ctx) error {
		return c.JSON(store.list())
	})

	// whole-collection replace; like the real backend, every record must
	// carry an id
	app.Put("/api/data-products", func(c *fiber.Ctx) error {
		var products []catalog.Product
		if err := json.Unmarshal(c.Body(), &products); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Expected array of products"})
		}
		for i := range products {
			if products[i].ID == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Each product must have an 'id' field"})
			}
			products[i].Normalize()
		}
		store.replace(products)
		log.Info().Int("count", len(products)).Msg("collection replaced")
		return c.JSON(fiber.Map{"status": "success"})
	})

	app.Get("/api/user-info", func(c *fiber.Ctx) error {
		if email := os.Getenv("STUB_EMAIL"); email != "" {
			c.Set(identity.HeaderGapAuth, email)
		}
		groups := []string{}
		if v := os.Getenv("STUB_GROUPS"); v != "" {
			for _, g := range strings.Split(v, ",") {
				if g = strings.TrimSpace(g); g != "" {
					groups = append(groups, g)
				}
			}
		}
		admin := os.Getenv("STUB_ADMIN")
		return c.JSON(fiber.Map{
			"username": getenv("STUB_USERNAME", "local.dev"),
			"is_admin": admin == "1" || strings.EqualFold(admin, "true"),
			"groups":   groups,
		})
	})

	addr := getenv("STUB_ADDR", ":8000")
	log.Info().Str("addr", addr).Msg("starting stub catalog")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// seedProducts loads the collection from STUB_SEED_FILE when set, otherwise
// falls back to a small built-in sample.
func seedProducts(log zerolog.Logger) []catalog.Product {
	if path := os.Getenv("STUB_SEED_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("reading seed file")
		}
		var products []catalog.Product
		if err := json.Unmarshal(data, &products); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("parsing seed file")
		}
		for i := range products {
			products[i].Normalize()
		}
		log.Info().Int("count", len(products)).Str("path", path).Msg("seeded from file")
		return products
	}
	return defaultSeed()
}

func defaultSeed() []catalog.Product {
	return []catalog.Product{
		{
			ID:                     "DP0001",
			Name:                   "Commercial Sales Analytics",
			Description:            "Sales performance analytics for commercial operations",
			Purpose:                "Enable data-driven decision making for commercial teams",
			Type:                   "Analytics Data Product",
			Domain:                 "Commercial",
			SubDomain:              "Commercial",
			Region:                 "Global",
			Owner:                  "commercial.analytics@example.com",
			Certified:              "Yes",
			Classification:         "Internal",
			GXP:                    "Non-GXP",
			IntervalOfChange:       "Daily",
			LastUpdatedDate:        "2024-01-15",
			FirstPublishDate:       "2023-06-01",
			NextReassessmentDate:   "2024-06-01",
			SecurityConsiderations: "Access restricted to commercial teams.",
			DatabricksURL:          "https://databricks.example.com/workspace/commercial-analytics",
			TableauURL:             "https://tableau.example.com/commercial-dashboard",
			Tags:                   []string{"analytics", "commercial", "sales"},
		},
		{
			ID:                   "DP0002",
			Name:                 "Clinical Trial Data Repository",
			Description:          "Centralized repository for clinical trial data and outcomes",
			Purpose:              "Support clinical research and regulatory submissions",
			Type:                 "Dataset",
			Domain:               "Clinical",
			SubDomain:            "Clinical Research",
			Region:               "Global",
			Owner:                "clinical.data@example.com",
			Certified:            "Yes",
			Classification:       "Confidential",
			GXP:                  "GXP",
			IntervalOfChange:     "Weekly",
			LastUpdatedDate:      "2024-02-02",
			FirstPublishDate:     "2022-11-20",
			NextReassessmentDate: "2024-11-20",
			Tags:                 []string{"clinical", "trials"},
		},
		{
			ID:               "DP0003",
			Name:             "Supply Chain Control Tower",
			Description:      "Dashboard tracking inventory and logistics KPIs",
			Purpose:          "Monitor end-to-end supply chain performance",
			Type:             "Dashboard",
			Domain:           "Supply Chain",
			SubDomain:        "Supply Chain",
			Region:           "EMEA",
			Owner:            "supply.chain@example.com",
			Certified:        "In Progress",
			Classification:   "Internal",
			GXP:              "Non-GXP",
			IntervalOfChange: "Real-time",
			LastUpdatedDate:  "2024-03-10",
			FirstPublishDate: "2023-01-05",
			QlikURL:          "https://qlik.example.com/supply-chain",
			Tags:             []string{"supply chain", "logistics"},
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
