package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldReadsByWireName(t *testing.T) {
	p := Product{ID: "DP1", GXP: "Non-GXP", IntervalOfChange: "Daily", AIBIGenieURL: "https://genie.example.com"}
	assert.Equal(t, "DP1", p.Field("id"))
	assert.Equal(t, "Non-GXP", p.Field("gxp"))
	assert.Equal(t, "Daily", p.Field("interval_of_change"))
	assert.Equal(t, "https://genie.example.com", p.Field("ai_bi_genie_url"))
	assert.Equal(t, "", p.Field("name"))
	assert.Equal(t, "", p.Field("nope"))
}

func TestSetFieldAssignsByWireName(t *testing.T) {
	var p Product
	p.SetField("name", "Sales Dashboard")
	p.SetField("sub_domain", "Commercial")
	p.SetField("nope", "ignored")
	p.SetField("tags", "ignored too")
	assert.Equal(t, "Sales Dashboard", p.Name)
	assert.Equal(t, "Commercial", p.SubDomain)
	assert.Nil(t, p.Tags)
}

func TestNormalizeCoercesNilTags(t *testing.T) {
	var p Product
	p.Normalize()
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
}

func TestCloneSharesNoTags(t *testing.T) {
	p := Product{ID: "DP1", Tags: []string{"a", "b"}}
	c := p.Clone()
	c.Tags[0] = "changed"
	assert.Equal(t, "a", p.Tags[0])
}
