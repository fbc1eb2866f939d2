package role

// Role 角色标识
//
// A role is an opaque name drawn from a fixed script. Identity is the
// name itself; category membership comes from the owning Script.
type Role string

func (r Role) String() string { return string(r) }

// Category 角色阵营分类
type Category byte

const (
	CategoryTownsfolk Category = 0
	CategoryOutsider  Category = 1
	CategoryMinion    Category = 2
	CategoryDemon     Category = 3
)

var CategoryDictionary = map[Category]string{
	CategoryTownsfolk: "townsfolk",
	CategoryOutsider:  "outsider",
	CategoryMinion:    "minion",
	CategoryDemon:     "demon",
}

func (c Category) String() string {
	if s, ok := CategoryDictionary[c]; ok {
		return s
	}
	return "unknown"
}

// Categories lists the four categories in canonical output order.
var Categories = []Category{
	CategoryTownsfolk,
	CategoryOutsider,
	CategoryMinion,
	CategoryDemon,
}
