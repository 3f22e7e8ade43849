// Package content holds the portfolio data shown by the about, skills,
// projects and contact commands. The default content is embedded Lua,
// compiled by the loader package at startup.
package content

import "embed"

// Default holds the built-in Lua content files under default/.
//
//go:embed default/*.lua
var Default embed.FS

// DefaultDir is the directory inside Default holding the Lua files.
const DefaultDir = "default"

// Project groups, in display order.
const (
	GroupFeatured = "featured"
	GroupCurrent  = "current"
	GroupOther    = "other"
)

// Groups lists the project groups in display order.
var Groups = []string{GroupFeatured, GroupCurrent, GroupOther}

// Portfolio is the compiled content, immutable after loading.
type Portfolio struct {
	Profile  Profile
	Skills   []Skill
	Projects []Project
	Contacts []Contact
}

type Profile struct {
	Name     string
	Title    string
	Location string
	Photo    string // optional image path, web only
	Bio      []string
	Tagline  string
}

type Skill struct {
	Category string
	Bullets  []string
}

type Project struct {
	ID         string
	Title      string
	Deployment string // optional; hyperlinks the title
	Summary    string
	Bullets    []string
	Sources    []Source
	Group      string
	Order      int
}

type Source struct {
	Label string
	URL   string
}

type Contact struct {
	Label string
	URL   string
}

// ProjectsIn returns the projects of one group in source order.
func (p *Portfolio) ProjectsIn(group string) []Project {
	var out []Project
	for _, pr := range p.Projects {
		if pr.Group == group {
			out = append(out, pr)
		}
	}
	return out
}

// Project looks up a project by id.
func (p *Portfolio) Project(id string) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.ID == id {
			return pr, true
		}
	}
	return Project{}, false
}
