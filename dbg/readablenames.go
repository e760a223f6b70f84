package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. Triangles in a log line are much easier to tell
// apart as "SoberMacaw" and "HappyBadger" than as 0xc000124a80 and
// 0xc000124b40.

type Namer struct {
	mu   sync.Mutex
	memo map[interface{}]string
	used map[string]struct{}
}

func NewNamer() *Namer {
	return &Namer{
		memo: make(map[interface{}]string),
		used: make(map[string]struct{}),
	}
}

var defaultNamer = NewNamer()

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	return defaultNamer.Name(obj)
}

func (n *Namer) Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if r, ok := n.memo[obj]; ok {
		return r
	}
	r := n.fresh()
	n.memo[obj] = r
	return r
}

// Petnames run out of combinations quickly enough to collide in a big mesh, so
// collisions get a numeric suffix.
func (n *Namer) fresh() string {
	base := strings.ReplaceAll(strings.Title(petname.Generate(2, " ")), " ", "")
	name := base
	for i := 2; ; i++ {
		if _, taken := n.used[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
	n.used[name] = struct{}{}
	return name
}

func (n *Namer) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.memo)
}
