package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mvoss.dev/internal/catalog"
	"mvoss.dev/internal/config"
	"mvoss.dev/internal/observability"
	"mvoss.dev/internal/relay"
	"mvoss.dev/internal/render"
	"mvoss.dev/internal/store"
)

type app struct {
	cfg      config.Config
	log      *zap.Logger
	store    *store.Store
	catalog  *catalog.Catalog
	pipeline *render.Pipeline
	sender   relay.Sender
}

func newApp(cfg config.Config, log *zap.Logger, st *store.Store,
	cat *catalog.Catalog, pipeline *render.Pipeline, sender relay.Sender) *app {
	a := &app{
		cfg:      cfg,
		log:      log,
		store:    st,
		catalog:  cat,
		pipeline: pipeline,
		sender:   sender,
	}
	a.initAdminSession()
	return a
}

// router wires up all routes.
func (a *app) router() *gin.Engine {
	gin.SetMode(ginMode(a.cfg.Mode))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(a.requestLogger())
	r.Use(a.visitorTracking())

	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	// Home page
	r.GET("/", a.homePage)

	// HTMX fragment endpoints
	r.GET("/projects", a.projectCards)
	r.GET("/projects/:id", a.projectCard)
	r.GET("/contact-form", a.contactForm)

	// Contact form submission
	r.POST("/contact", a.submitContact)

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{"title": "Privacy Policy"})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.setupAdminRoutes(r)

	return r
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}

// homePage renders the full page with the unfiltered card set.
func (a *app) homePage(c *gin.Context) {
	cards := a.pipeline.Render(catalog.CategoryAll)
	observability.RecordRender(catalog.CategoryAll, len(cards))

	c.HTML(http.StatusOK, "index.html", gin.H{
		"aboutMeContent":  AboutMe,
		"cards":           cards,
		"categories":      a.catalog.Categories(),
		"projectCount":    a.catalog.Len(),
		"technologyCount": len(a.catalog.Technologies()),
		"categoryCount":   len(a.catalog.Categories()),
	})
}

// projectCards re-renders the card container for the selected category and
// returns just the cards fragment. An unmatched category comes back empty.
func (a *app) projectCards(c *gin.Context) {
	category := c.DefaultQuery("category", catalog.CategoryAll)
	cards := a.pipeline.Render(category)
	observability.RecordRender(category, len(cards))

	c.HTML(http.StatusOK, "cards.html", gin.H{"cards": cards})
}

// projectCard returns the fragment for a single project.
func (a *app) projectCard(c *gin.Context) {
	id := c.Param("id")
	project, ok := a.catalog.Get(id)
	if !ok {
		c.HTML(http.StatusNotFound, "card-missing.html", gin.H{"id": id})
		return
	}
	c.HTML(http.StatusOK, "card.html", render.BuildCard(project))
}

func (a *app) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"title": "Contact Me"})
}

// submitContact validates the form, journals the message, and relays it.
// The relay outcome is recorded either way so nothing a visitor wrote is
// lost to a flaky SMTP hop.
func (a *app) submitContact(c *gin.Context) {
	msg := relay.Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	}

	if err := msg.Validate(); err != nil {
		observability.RecordContact("rejected")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in every field and use a valid email address.",
		})
		return
	}

	sendErr := a.sender.Send(c.Request.Context(), msg)
	if _, err := a.store.SaveMessage(c.Request.Context(),
		msg.Name, msg.Email, msg.Body, sendErr == nil); err != nil {
		a.log.Error("journal contact message", zap.Error(err))
	}

	if sendErr != nil {
		observability.RecordContact("failed")
		a.log.Error("relay contact message", zap.Error(sendErr))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	observability.RecordContact("relayed")
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

// requestLogger logs every request through zap.
func (a *app) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		a.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}

// visitorTracking records page views with hashed IPs. Static assets, admin
// pages and operational endpoints are skipped, and Do Not Track is honored.
func (a *app) visitorTracking() gin.HandlerFunc {
	skip := []string{"/static/", "/images/", "/admin", "/favicon", "/privacy", "/metrics", "/healthz"}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range skip {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		observability.RecordPageView()

		ip := c.ClientIP()
		userAgent := c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := a.store.RecordVisit(ctx, ip, userAgent, path); err != nil {
				a.log.Warn("record visitor", zap.Error(err))
			}
		}()

		c.Next()
	}
}
