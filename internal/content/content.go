// Package content holds the copy rendered on the portfolio page.
package content

// Item is one card in a portfolio grid.
type Item struct {
	Title       string
	Description string
	Tags        []string
	Link        string
}

// Section is one portfolio tab. ID is the container element id and GridClass
// the class of the grid inside its .grid-wrapper.
type Section struct {
	ID        string
	Title     string
	GridClass string
	Items     []Item
}

// Entry is one line of the work or education timeline.
type Entry struct {
	Title        string
	Organization string
	Start        string
	End          string
	Logo         string
	Points       []string
}

var AboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work
behind the scenes. Most of my projects start with a simple idea and turn into a chance to learn something new,
whether it's exploring a different language, experimenting with tools, or solving tricky problems.`

// Roles cycle through the hero's typing effect.
var Roles = []string{
	"Full Stack Developer",
	"Data Structures & Algorithms",
	"Open Source Contributor",
	"Creative Coder",
	"Artificial Intelligence Enthusiast",
	"Data Science Learner",
	"Machine Learning Explorer",
}

var projects = []Item{
	{
		Title:       "Terminal Mail",
		Description: "A terminal email client with fuzzy finding, built on a Go TUI framework and IMAP.",
		Tags:        []string{"Go", "TUI", "IMAP"},
	},
	{
		Title:       "Terminal Music",
		Description: "Streams YouTube Music from the command line through yt-dlp and mpv behind a keyboard-driven TUI.",
		Tags:        []string{"Go", "TUI", "mpv"},
	},
	{
		Title:       "Game Recommender",
		Description: "Recommends games with TF-IDF vectors and cosine similarity, with filters on reviews and ratings.",
		Tags:        []string{"Python", "scikit-learn"},
	},
	{
		Title:       "Portfolio",
		Description: "This site: a Go server with gin and HTMX, and a WebAssembly client for its interactive bits.",
		Tags:        []string{"Go", "gin", "HTMX", "WebAssembly"},
	},
	{
		Title:       "Link Shortener",
		Description: "A small URL shortener backed by sqlite with click counting.",
		Tags:        []string{"Go", "sqlite"},
	},
	{
		Title:       "Drum Sequencer",
		Description: "A step sequencer that runs in the browser and on the desktop.",
		Tags:        []string{"Go", "audio"},
	},
	{
		Title:       "Dotfiles",
		Description: "Shell, editor and window manager configuration kept reproducible across machines.",
		Tags:        []string{"shell", "nix"},
	},
}

var certificates = []Item{
	{Title: "Project+", Description: "CompTIA project management certification."},
	{Title: "B.S. Computer Science", Description: "Western Governors University."},
	{Title: "Go Concurrency", Description: "Goroutines, channels and the memory model."},
	{Title: "SQL Fundamentals", Description: "Relational modelling and query tuning."},
}

var skills = []Item{
	{Title: "Go"}, {Title: "Python"}, {Title: "JavaScript"}, {Title: "SQL"},
	{Title: "HTML & CSS"}, {Title: "HTMX"}, {Title: "Docker"}, {Title: "Linux"},
	{Title: "Git"}, {Title: "sqlite"}, {Title: "PostgreSQL"},
}

// Sections returns the portfolio tabs in display order.
func Sections() []Section {
	return []Section{
		{ID: "projects", Title: "Projects", GridClass: "projects-grid", Items: projects},
		{ID: "certificates", Title: "Certificates", GridClass: "certificates-grid", Items: certificates},
		{ID: "skills", Title: "Skills", GridClass: "skills-grid", Items: skills},
	}
}

var Work = []Entry{
	{
		Title:        "Presentation Expert",
		Organization: "Target",
		Start:        "Aug 2023",
		End:          "Present",
		Logo:         "images/TargetLogo.jpg",
		Points: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows",
			"Managed backroom inventory processes and communication between floor and logistics teams",
			"Standardized daily pricing and signage checks across departments",
		},
	},
	{
		Title:        "Manager",
		Organization: "Jasons Catered Events",
		Start:        "Aug 2016",
		End:          "Present",
		Logo:         "images/jasonsCateringLogo.png",
		Points: []string{
			"Coordinated customized menus and dietary requirements with clients",
			"Troubleshot AV equipment and ran digital order tracking",
			"Kept supply inventory and deliveries between venues on schedule",
		},
	},
}

var Education = []Entry{
	{
		Title:        "Bachelor of Computer Science",
		Organization: "Western Governors University",
		Start:        "Sept 2019",
		End:          "May 2023",
		Logo:         "images/WGU-logo.png",
		Points: []string{
			"Relevant coursework: Data Structures, Algorithms, Web Development",
			"Senior project: machine learning recommendation system",
		},
	},
	{
		Title:        "Project Management",
		Organization: "CompTIA",
		Start:        "July 2022",
		End:          "Present",
		Logo:         "images/comptiaCert.png",
		Points: []string{
			"Certified in agile project management methodology",
		},
	},
}
