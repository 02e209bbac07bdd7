// Web server exposing the configurator core over a JSON API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"assembly-config-poc/internal/catalog"
	"assembly-config-poc/internal/config"
	"assembly-config-poc/internal/datastore"
	"assembly-config-poc/internal/pricing"
	"assembly-config-poc/internal/quote"
	"assembly-config-poc/internal/resolver"
	"assembly-config-poc/internal/selection"
)

var (
	ds       datastore.DataStore
	cat      *catalog.Catalog
	res      *resolver.Resolver
	engine   *pricing.Engine
	qFactory *quote.Factory
)

func main() {
	addr := flag.String("addr", ":8181", "Listen address")
	flag.Parse()

	cfg := config.GetDataStoreConfig()

	var err error
	ds, err = datastore.NewDataStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize data store: %v", err)
	}
	defer ds.Close()

	// Catalog is loaded once per process lifetime; refresh is wholesale by
	// restart.
	cat, err = ds.LoadCatalog(context.Background())
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	res = resolver.New(cat)
	engine = pricing.New(cat)
	qFactory = quote.NewFactory(engine, nil)

	// Use release mode in production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", handleHealth)

	api := r.Group("/api")
	{
		api.GET("/categories", handleCategories)
		api.GET("/components", handleComponents)
		api.GET("/components/:category", handleComponents)

		api.POST("/compatible/:category", handleCompatible)
		api.POST("/validate", handleValidate)
		api.POST("/price", handlePrice)

		api.POST("/quotes", handleCreateQuote)
		api.GET("/quotes/:id", handleGetQuote)
		api.GET("/users/:userId/quotes", handleListQuotes)
	}

	log.Printf("Starting configurator API on %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Fatal(err)
	}
}

// corsMiddleware adds CORS headers for cross-origin requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func handleCategories(c *gin.Context) {
	type categoryView struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		StepOrder int    `json:"step_order"`
	}
	out := make([]categoryView, 0)
	for _, cc := range catalog.AllCategories() {
		out = append(out, categoryView{
			ID:        string(cc),
			Name:      cc.DisplayName(),
			StepOrder: cc.StepOrder(),
		})
	}
	c.JSON(http.StatusOK, out)
}

func handleComponents(c *gin.Context) {
	raw := c.Param("category")
	if raw == "" {
		c.JSON(http.StatusOK, cat.Components())
		return
	}
	parsed, ok := catalog.ParseCategory(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown category %q", raw)})
		return
	}
	c.JSON(http.StatusOK, cat.ComponentsInCategory(parsed))
}

// selectionRequest is the wire form of a partial selection: chosen component
// ids, in any order.
type selectionRequest struct {
	ComponentIDs []string `json:"component_ids"`
}

// toSelection builds a working selection from the request. Unknown ids are
// skipped: the core is permissive, and a stale client should degrade rather
// than fail.
func (r selectionRequest) toSelection() *selection.Selection {
	sel := selection.New("api")
	for _, id := range r.ComponentIDs {
		if comp, ok := cat.ComponentByID(id); ok {
			sel.Select(comp)
		}
	}
	return sel
}

func handleCompatible(c *gin.Context) {
	target, ok := catalog.ParseCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown category %q", c.Param("category"))})
		return
	}

	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	comps := res.CompatibleComponents(req.toSelection(), target)
	if comps == nil {
		comps = []catalog.Component{}
	}
	c.JSON(http.StatusOK, comps)
}

func handleValidate(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	sel := req.toSelection()
	c.JSON(http.StatusOK, gin.H{
		"valid":    res.IsSelectionValid(sel),
		"has_base": sel.HasBase(),
	})
}

func handlePrice(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, engine.GenerateBill(req.toSelection()))
}

type quoteRequest struct {
	ComponentIDs []string `json:"component_ids"`
	UserID       string   `json:"user_id"`
	ValidDays    int      `json:"valid_days"`
	Notes        string   `json:"notes"`
}

func handleCreateQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	sel := selectionRequest{ComponentIDs: req.ComponentIDs}.toSelection()
	if err := ds.SaveSelection(c.Request.Context(), sel.ToRecord()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save selection: " + err.Error()})
		return
	}

	q := qFactory.CreateQuote(sel, req.UserID, quote.Options{
		ValidDays: req.ValidDays,
		Notes:     req.Notes,
	})
	if err := ds.SaveQuote(c.Request.Context(), q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save quote: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, q)
}

func handleGetQuote(c *gin.Context) {
	q, err := ds.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if q == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quote":            q,
		"effective_status": quote.EffectiveStatus(*q, time.Now()),
	})
}

func handleListQuotes(c *gin.Context) {
	quotes, err := ds.ListQuotesForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	now := time.Now()
	type quoteView struct {
		quote.Quote
		EffectiveStatus quote.Status `json:"effectiveStatus"`
	}
	out := make([]quoteView, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, quoteView{Quote: q, EffectiveStatus: quote.EffectiveStatus(q, now)})
	}
	c.JSON(http.StatusOK, out)
}
