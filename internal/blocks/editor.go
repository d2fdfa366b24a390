package blocks

// FieldKind describes how an editor should render a content field.
type FieldKind string

const (
	FieldText      FieldKind = "text"
	FieldMultiline FieldKind = "multiline"
	FieldList      FieldKind = "list"
)

// Field describes one editable field of a block's content. List fields carry
// the sub-record fields each item exposes.
type Field struct {
	Name  string
	Label string
	Kind  FieldKind
	Item  []Field
}

// Editor is the capability returned by the resolver: the ordered fields an
// authoring surface can render and mutate for one block type. Unsupported
// types resolve to a neutral capability instead of an error so the canvas can
// show a "no editor available" panel and keep the block intact.
type Editor struct {
	Type      Type
	Supported bool
	Fields    []Field
}

// ResolveEditor maps a block type to its editing capability. The switch is
// exhaustive over the registered set; anything else falls through to the
// unsupported capability.
func ResolveEditor(t Type) Editor {
	switch t {
	case TypeHero:
		return Editor{
			Type:      TypeHero,
			Supported: true,
			Fields: []Field{
				{Name: "headline", Label: "Headline", Kind: FieldText},
				{Name: "subheadline", Label: "Subheadline", Kind: FieldMultiline},
				{Name: "ctaText", Label: "Button Text", Kind: FieldText},
				{Name: "image", Label: "Background Image URL", Kind: FieldText},
			},
		}
	case TypeFeatures:
		return Editor{
			Type:      TypeFeatures,
			Supported: true,
			Fields: []Field{
				{Name: "title", Label: "Section Title", Kind: FieldText},
				{Name: "features", Label: "Features", Kind: FieldList, Item: []Field{
					{Name: "title", Label: "Feature Title", Kind: FieldText},
					{Name: "desc", Label: "Description", Kind: FieldMultiline},
				}},
			},
		}
	case TypePricing:
		return Editor{
			Type:      TypePricing,
			Supported: true,
			Fields: []Field{
				{Name: "title", Label: "Section Title", Kind: FieldText},
				{Name: "plans", Label: "Plans", Kind: FieldList, Item: []Field{
					{Name: "name", Label: "Plan Name", Kind: FieldText},
					{Name: "price", Label: "Price", Kind: FieldText},
					{Name: "features", Label: "Plan Features", Kind: FieldList, Item: []Field{
						{Name: "feature", Label: "Feature", Kind: FieldText},
					}},
				}},
			},
		}
	case TypeCTA, TypeTestimonials, TypeFAQ:
		return Editor{Type: t, Supported: false}
	default:
		return Editor{Type: t, Supported: false}
	}
}
