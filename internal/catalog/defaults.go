package catalog

// Default returns the site's hard-coded catalog. The entries are authored
// here and nowhere else; New catching a bad entry at boot is the whole
// validation story.
func Default() *Catalog {
	c, err := New(defaultProjects)
	if err != nil {
		panic("catalog: invalid default entry: " + err.Error())
	}
	return c
}

var defaultProjects = []Project{
	{
		ID:    "drift",
		Title: "Drift",
		Description: "A terminal-based email client with fuzzy-finder navigation, " +
			"built on the Charmbracelet TUI stack and go-imap.",
		Technologies: []string{"Go", "Bubble Tea", "go-imap", "Lip Gloss"},
		Category:     "cli",
		Icon:         "terminal",
		GitHubURL:    "https://github.com/mvoss/drift",
	},
	{
		ID:    "wavelength",
		Title: "Wavelength",
		Description: "A terminal music streamer that drives yt-dlp and mpv for " +
			"YouTube Music playback straight from the command line.",
		Technologies: []string{"Go", "Bubble Tea", "yt-dlp", "mpv"},
		Category:     "cli",
		Icon:         "music",
		GitHubURL:    "https://github.com/mvoss/wavelength",
		DocsURL:      "https://mvoss.dev/docs/wavelength",
	},
	{
		ID:    "shelfmate",
		Title: "Shelfmate",
		Description: "A game recommendation web app using TF-IDF vectorization and " +
			"cosine similarity over review text, with interactive visualizations " +
			"and live filtering by rating.",
		Technologies: []string{"Python", "Flask", "scikit-learn", "Plotly"},
		Category:     "fullstack",
		Icon:         "gamepad",
		DemoURL:      "https://shelfmate.mvoss.dev",
		GitHubURL:    "https://github.com/mvoss/shelfmate",
	},
	{
		ID:    "ledgerline",
		Title: "Ledgerline",
		Description: "A double-entry bookkeeping API with idempotent postings, " +
			"cursor pagination and an append-only transaction journal.",
		Technologies: []string{"Go", "PostgreSQL", "pgx", "OpenAPI"},
		Category:     "api",
		Icon:         "book",
		GitHubURL:    "https://github.com/mvoss/ledgerline",
		DocsURL:      "https://mvoss.dev/docs/ledgerline",
	},
	{
		ID:    "relay-station",
		Title: "Relay Station",
		Description: "An event fan-out service that bridges webhook producers to " +
			"Kafka topics, with per-consumer retry queues and a dead-letter shelf.",
		Technologies: []string{"Go", "Kafka", "Prometheus", "Docker"},
		Category:     "microservices",
		Icon:         "satellite",
		GitHubURL:    "https://github.com/mvoss/relay-station",
	},
	{
		ID:    "coldstore",
		Title: "Coldstore",
		Description: "A single-file key-value store with an LSM-tree layout, " +
			"background compaction and crash-safe WAL recovery.",
		Technologies: []string{"Go", "LSM-tree", "mmap"},
		Category:     "database",
		Icon:         "archive",
	},
	{
		ID:    "this-site",
		Title: "mvoss.dev",
		Description: "This site: a Go and Gin portfolio server with HTMX-driven " +
			"fragments, server-side card rendering and a privacy-conscious " +
			"visitor log.",
		Technologies: []string{"Go", "Gin", "HTMX", "SQLite", "Tailwind CSS"},
		Category:     "fullstack",
		Icon:         "globe",
		DemoURL:      "https://mvoss.dev",
		GitHubURL:    "https://github.com/mvoss/portfolio",
	},
}
