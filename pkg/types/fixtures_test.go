package types

type testContentType struct {
	*ContentTypeBase
}

func newTestContentType(key string, opts ContentTypeOptions) *testContentType {
	return &testContentType{NewContentTypeBase(key, opts)}
}

func (*testContentType) Description() string       { return "" }
func (*testContentType) Labels() map[string]string { return map[string]string{} }

type testTaxonomy struct {
	*TaxonomyBase
}

func newTestTaxonomy(key string) *testTaxonomy {
	return &testTaxonomy{NewTaxonomyBase(key, DefaultTaxonomyOptions())}
}

func (*testTaxonomy) Description() string       { return "" }
func (*testTaxonomy) Labels() map[string]string { return map[string]string{} }

type testPanel struct {
	*PanelBase
	body string
}

func newTestPanel(id, body string) *testPanel {
	return &testPanel{PanelBase: NewPanelBase(id, "Title", DefaultPanelOptions()), body: body}
}

func (p *testPanel) Render(Item) string { return p.body }
