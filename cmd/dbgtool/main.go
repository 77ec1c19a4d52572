package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dictionaryjuggler/dj/internal/djconfig"
	"github.com/dictionaryjuggler/dj/internal/engine"
	"github.com/dictionaryjuggler/dj/internal/ilist"
	"github.com/dictionaryjuggler/dj/parse"
	"github.com/dictionaryjuggler/dj/resolve"
	_ "github.com/dictionaryjuggler/dj/ops/combinators"
	_ "github.com/dictionaryjuggler/dj/ops/leaves"
)

func main() {
	dir, _ := os.MkdirTemp("", "t")
	listPath := dir + "/common.txt"
	os.WriteFile(listPath, []byte("PASSWORD\nhunter2\n"), 0o644)
	src := "global_set Common \"" + listPath + "\" (lower)\n" +
		"glist_in \"Common\"\n" +
		"report\n"
	script, err := parse.Parse("test", src)
	if err != nil { panic(err) }
	cfg := djconfig.New()
	resolved, err := resolve.Resolve(script, cfg)
	if err != nil { panic(err) }
	var stdout bytes.Buffer
	compiled, err := engine.Compile(resolved, cfg, &stdout, false)
	if err != nil { panic(err) }
	fmt.Println("population count", len(compiled.Population))
	stmt := compiled.Population[0]
	env := compiled.Template.ForEntry()
	fmt.Println(compiled.Template.GlobalLists["Common"].Contains("zzz"))
	out := stmt.Chain.Eval(env, ilist.IList{"zzz"})
	fmt.Println("out for zzz:", out)
	out2 := stmt.Chain.Eval(env, ilist.IList{"password"})
	fmt.Println("out for password:", out2)
}
