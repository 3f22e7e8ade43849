package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/nathoo/termfolio/content"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	profile  *lua.LTable
	skills   []rawSkill
	projects []rawProject
	contacts []content.Contact
	order    int
}

func (c *collector) nextSourceOrder() int {
	c.order++
	return c.order
}

// Load reads all .lua files from dir on disk and compiles them into a
// Portfolio.
func Load(dir string) (*content.Portfolio, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// Default compiles the embedded default content.
func Default() (*content.Portfolio, error) {
	return LoadFS(content.Default, content.DefaultDir)
}

// LoadFS reads all .lua files in dir of fsys, compiles them into a
// Portfolio and validates it. The Lua VM is discarded after loading.
func LoadFS(fsys fs.FS, dir string) (*content.Portfolio, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}

	// profile.lua first, rest alphabetical.
	luaFiles = sortedLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := execFile(L, fsys, path.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	p, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content: %w", err)
	}

	if err := validate(p); err != nil {
		return nil, err
	}

	return p, nil
}

// execFile runs one Lua chunk read from fsys.
func execFile(L *lua.LState, fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	fn, err := L.Load(f, name)
	if err != nil {
		return err
	}
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the content files.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require", "module",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}
