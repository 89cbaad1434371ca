package loader

// Root is a top-level tree under the resources directory.
type Root string

const (
	Assets Root = "assets"
	Data   Root = "data"
)

// ResourceType is the sub-path of a resource category within its root.
type ResourceType string

const (
	BlockStates ResourceType = "blockstates"
	BlockModels ResourceType = "models/block"
	ItemModels  ResourceType = "models/item"
	Models      ResourceType = "models"
	Recipes     ResourceType = "recipes"
	BlockTags   ResourceType = "tags/blocks"
	ItemTags    ResourceType = "tags/items"
)

// Category names a (ResourceType, Root) pair that documents are loaded from.
type Category struct {
	Name string
	Type ResourceType
	Root Root
}

// Categories lists every named document category.
var Categories = []Category{
	{Name: "block_state", Type: BlockStates, Root: Assets},
	{Name: "block_model", Type: BlockModels, Root: Assets},
	{Name: "item_model", Type: ItemModels, Root: Assets},
	{Name: "model", Type: Models, Root: Assets},
	{Name: "recipe", Type: Recipes, Root: Data},
	{Name: "block_tag", Type: BlockTags, Root: Data},
	{Name: "item_tag", Type: ItemTags, Root: Data},
}

// LookupCategory finds a category by name.
func LookupCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
