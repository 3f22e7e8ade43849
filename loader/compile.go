// Package loader compiles Lua portfolio content into Go structs at
// startup. The Lua VM is discarded after loading; no Lua runs afterwards.
package loader

import (
	"fmt"
	"sort"

	"github.com/nathoo/termfolio/content"
	lua "github.com/yuin/gopher-lua"
)

// rawSkill holds a skill table before compilation.
type rawSkill struct {
	category string
	table    *lua.LTable
	order    int
}

// rawProject holds a project table before compilation.
type rawProject struct {
	id    string
	table *lua.LTable
	order int
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// stringList converts the array part of a table to strings. Non-string
// entries are reported as an error.
func stringList(tbl *lua.LTable) ([]string, error) {
	if tbl == nil {
		return nil, nil
	}
	n := tbl.MaxN()
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		s, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("entry %d is %s, want string", i, tbl.RawGetInt(i).Type())
		}
		out = append(out, string(s))
	}
	return out, nil
}

// compile converts all collected Lua data into a Portfolio.
func compile(coll *collector) (*content.Portfolio, error) {
	if coll.profile == nil {
		return nil, fmt.Errorf("no Profile{} definition found")
	}
	profile, err := compileProfile(coll.profile)
	if err != nil {
		return nil, fmt.Errorf("compiling profile: %w", err)
	}
	p := &content.Portfolio{Profile: profile, Contacts: coll.contacts}

	sort.SliceStable(coll.skills, func(i, j int) bool { return coll.skills[i].order < coll.skills[j].order })
	for _, raw := range coll.skills {
		bullets, err := stringList(raw.table)
		if err != nil {
			return nil, fmt.Errorf("compiling skill %s: %w", raw.category, err)
		}
		p.Skills = append(p.Skills, content.Skill{Category: raw.category, Bullets: bullets})
	}

	sort.SliceStable(coll.projects, func(i, j int) bool { return coll.projects[i].order < coll.projects[j].order })
	for _, raw := range coll.projects {
		pr, err := compileProject(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling project %s: %w", raw.id, err)
		}
		p.Projects = append(p.Projects, pr)
	}

	return p, nil
}

func compileProfile(tbl *lua.LTable) (content.Profile, error) {
	bio, err := stringList(getTable(tbl, "bio"))
	if err != nil {
		return content.Profile{}, fmt.Errorf("bio: %w", err)
	}
	// A single string is accepted as a one-paragraph bio.
	if s := getString(tbl, "bio"); s != "" {
		bio = []string{s}
	}
	return content.Profile{
		Name:     getString(tbl, "name"),
		Title:    getString(tbl, "title"),
		Location: getString(tbl, "location"),
		Photo:    getString(tbl, "photo"),
		Tagline:  getString(tbl, "tagline"),
		Bio:      bio,
	}, nil
}

func compileProject(raw rawProject) (content.Project, error) {
	tbl := raw.table
	bullets, err := stringList(getTable(tbl, "bullets"))
	if err != nil {
		return content.Project{}, fmt.Errorf("bullets: %w", err)
	}

	var sources []content.Source
	if st := getTable(tbl, "sources"); st != nil {
		for i := 1; i <= st.MaxN(); i++ {
			pair, ok := st.RawGetInt(i).(*lua.LTable)
			if !ok {
				return content.Project{}, fmt.Errorf("source %d is not a {label, url} pair", i)
			}
			pairList, err := stringList(pair)
			if err != nil || len(pairList) != 2 {
				return content.Project{}, fmt.Errorf("source %d is not a {label, url} pair", i)
			}
			sources = append(sources, content.Source{Label: pairList[0], URL: pairList[1]})
		}
	}

	group := getString(tbl, "group")
	if group == "" {
		group = content.GroupFeatured
	}

	return content.Project{
		ID:         raw.id,
		Title:      getString(tbl, "title"),
		Deployment: getString(tbl, "deployment"),
		Summary:    getString(tbl, "summary"),
		Bullets:    bullets,
		Sources:    sources,
		Group:      group,
		Order:      raw.order,
	}, nil
}

// sortedLuaFiles returns .lua files with profile.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var first string
	var others []string
	for _, f := range files {
		if f == "profile.lua" {
			first = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if first != "" {
		return append([]string{first}, others...)
	}
	return others
}
