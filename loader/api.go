package loader

import (
	"github.com/nathoo/termfolio/content"
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the content constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Profile { name = "...", bio = {...}, ... }
	L.SetGlobal("Profile", L.NewFunction(func(L *lua.LState) int {
		coll.profile = L.CheckTable(1)
		return 0
	}))

	// Skill "Category" { "bullet", ... }
	L.SetGlobal("Skill", L.NewFunction(func(L *lua.LState) int {
		category := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.skills = append(coll.skills, rawSkill{
				category: category,
				table:    tbl,
				order:    coll.nextSourceOrder(),
			})
			return 0
		}))
		return 1
	}))

	// Project "id" { title = "...", ... }
	L.SetGlobal("Project", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.projects = append(coll.projects, rawProject{
				id:    id,
				table: tbl,
				order: coll.nextSourceOrder(),
			})
			return 0
		}))
		return 1
	}))

	// Contact "label" "url"
	L.SetGlobal("Contact", L.NewFunction(func(L *lua.LState) int {
		label := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			url := L.CheckString(1)
			coll.contacts = append(coll.contacts, content.Contact{Label: label, URL: url})
			return 0
		}))
		return 1
	}))
}
