package render

import (
	"github.com/nathoo/termfolio/content"
	"github.com/nathoo/termfolio/types"
)

// RegisterPortfolio adds the about, skills, projects and contact
// templates backed by p.
func RegisterPortfolio(c *Catalog, p *content.Portfolio) {
	c.Register(TmplAbout, func(Args) types.Element { return aboutElement(p) })
	c.Register(TmplSkills, func(Args) types.Element { return skillsElement(p) })
	c.Register(TmplProjects, func(Args) types.Element { return projectsElement(p) })
	c.Register(TmplProject, func(a Args) types.Element { return projectElement(p, a.String("id")) })
	c.Register(TmplContact, func(Args) types.Element { return contactElement(p) })
}

func aboutElement(p *content.Portfolio) types.Element {
	pr := p.Profile
	children := []types.Element{Heading(pr.Name)}
	if pr.Title != "" || pr.Location != "" {
		line := pr.Title
		if pr.Location != "" {
			if line != "" {
				line += ", "
			}
			line += pr.Location
		}
		children = append(children, Para(Span("emph", line)))
	}
	for _, b := range pr.Bio {
		children = append(children, Para(Text(b)))
	}
	return Fragment("about", children...)
}

func skillsElement(p *content.Portfolio) types.Element {
	var children []types.Element
	for _, s := range p.Skills {
		items := make([]types.Element, 0, len(s.Bullets))
		for _, b := range s.Bullets {
			items = append(items, Item(Text(b)))
		}
		children = append(children, Heading(s.Category), List(items...))
	}
	return Fragment("skills", children...)
}

var groupTitles = map[string]string{
	content.GroupCurrent: "Current projects:",
	content.GroupOther:   "Other projects:",
}

func projectsElement(p *content.Portfolio) types.Element {
	var children []types.Element
	for _, g := range content.Groups {
		projects := p.ProjectsIn(g)
		if len(projects) == 0 {
			continue
		}
		if title, ok := groupTitles[g]; ok {
			children = append(children, Heading(title))
		}
		items := make([]types.Element, 0, len(projects))
		for _, pr := range projects {
			items = append(items, projectItem(pr))
		}
		children = append(children, List(items...))
	}
	return Fragment("projects", children...)
}

func projectElement(p *content.Portfolio, id string) types.Element {
	pr, ok := p.Project(id)
	if !ok {
		return Para(Span("error", "No project named "), Span("input", id),
			Text(". Try "), Command("projects", "projects"), Text("."))
	}
	return Fragment("projects", List(projectItem(pr)))
}

func projectItem(pr content.Project) types.Element {
	title := Span("emph", pr.Title)
	if pr.Deployment != "" {
		title = Link(pr.Title, pr.Deployment)
	}
	children := []types.Element{title}
	if pr.Summary != "" {
		children = append(children, Text(" - "+pr.Summary))
	}
	if len(pr.Bullets) > 0 {
		bullets := make([]types.Element, 0, len(pr.Bullets))
		for _, b := range pr.Bullets {
			bullets = append(bullets, Item(Text(b)))
		}
		children = append(children, List(bullets...))
	}
	if len(pr.Sources) > 0 {
		var src []types.Element
		for i, s := range pr.Sources {
			if i > 0 {
				src = append(src, Text(" / "))
			}
			src = append(src, Link(s.Label, s.URL))
		}
		children = append(children, Para(src...))
	}
	return Item(children...)
}

func contactElement(p *content.Portfolio) types.Element {
	items := make([]types.Element, 0, len(p.Contacts))
	for _, c := range p.Contacts {
		items = append(items, Item(Link(c.Label, c.URL)))
	}
	return Fragment("contact", Heading("Contact links:"), List(items...))
}
