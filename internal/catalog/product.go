package catalog

// Product is one catalog entry describing a data asset. Every field except the
// id is optional from the client's perspective; the UI renders missing values
// as "Not specified". JSON tags use the wire names of the upstream catalog API.
type Product struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name,omitempty"`
	Description            string   `json:"description,omitempty"`
	Purpose                string   `json:"purpose,omitempty"`
	Type                   string   `json:"type,omitempty"`
	Domain                 string   `json:"domain,omitempty"`
	SubDomain              string   `json:"sub_domain,omitempty"`
	Region                 string   `json:"region,omitempty"`
	Owner                  string   `json:"owner,omitempty"`
	Certified              string   `json:"certified,omitempty"`
	Classification         string   `json:"classification,omitempty"`
	GXP                    string   `json:"gxp,omitempty"`
	IntervalOfChange       string   `json:"interval_of_change,omitempty"`
	LastUpdatedDate        string   `json:"last_updated_date,omitempty"`
	FirstPublishDate       string   `json:"first_publish_date,omitempty"`
	NextReassessmentDate   string   `json:"next_reassessment_date,omitempty"`
	SecurityConsiderations string   `json:"security_considerations,omitempty"`
	BusinessFunction       string   `json:"business_function,omitempty"`
	DatabricksURL          string   `json:"databricks_url,omitempty"`
	TableauURL             string   `json:"tableau_url,omitempty"`
	QlikURL                string   `json:"qlik_url,omitempty"`
	DataContractURL        string   `json:"data_contract_url,omitempty"`
	AIBIGenieURL           string   `json:"ai_bi_genie_url,omitempty"`
	RequestAccessURL       string   `json:"request_access_url,omitempty"`
	Tags                   []string `json:"tags"`
}

// Field returns the value of a scalar field by its wire name. Absent or
// unknown fields read as the empty string; tags are not reachable through
// Field because they are a sequence, not a scalar.
func (p Product) Field(name string) string {
	switch name {
	case "id":
		return p.ID
	case "name":
		return p.Name
	case "description":
		return p.Description
	case "purpose":
		return p.Purpose
	case "type":
		return p.Type
	case "domain":
		return p.Domain
	case "sub_domain":
		return p.SubDomain
	case "region":
		return p.Region
	case "owner":
		return p.Owner
	case "certified":
		return p.Certified
	case "classification":
		return p.Classification
	case "gxp":
		return p.GXP
	case "interval_of_change":
		return p.IntervalOfChange
	case "last_updated_date":
		return p.LastUpdatedDate
	case "first_publish_date":
		return p.FirstPublishDate
	case "next_reassessment_date":
		return p.NextReassessmentDate
	case "security_considerations":
		return p.SecurityConsiderations
	case "business_function":
		return p.BusinessFunction
	case "databricks_url":
		return p.DatabricksURL
	case "tableau_url":
		return p.TableauURL
	case "qlik_url":
		return p.QlikURL
	case "data_contract_url":
		return p.DataContractURL
	case "ai_bi_genie_url":
		return p.AIBIGenieURL
	case "request_access_url":
		return p.RequestAccessURL
	}
	return ""
}

// SetField assigns a scalar field by its wire name. Unknown names and "tags"
// are ignored; the editor parses tag cells separately because their cell
// representation is a comma-separated string.
func (p *Product) SetField(name, value string) {
	switch name {
	case "id":
		p.ID = value
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "purpose":
		p.Purpose = value
	case "type":
		p.Type = value
	case "domain":
		p.Domain = value
	case "sub_domain":
		p.SubDomain = value
	case "region":
		p.Region = value
	case "owner":
		p.Owner = value
	case "certified":
		p.Certified = value
	case "classification":
		p.Classification = value
	case "gxp":
		p.GXP = value
	case "interval_of_change":
		p.IntervalOfChange = value
	case "last_updated_date":
		p.LastUpdatedDate = value
	case "first_publish_date":
		p.FirstPublishDate = value
	case "next_reassessment_date":
		p.NextReassessmentDate = value
	case "security_considerations":
		p.SecurityConsiderations = value
	case "business_function":
		p.BusinessFunction = value
	case "databricks_url":
		p.DatabricksURL = value
	case "tableau_url":
		p.TableauURL = value
	case "qlik_url":
		p.QlikURL = value
	case "data_contract_url":
		p.DataContractURL = value
	case "ai_bi_genie_url":
		p.AIBIGenieURL = value
	case "request_access_url":
		p.RequestAccessURL = value
	}
}

// Normalize coerces wire payload quirks: records may arrive with a null tag
// list, which the rest of the app treats as an empty sequence.
func (p *Product) Normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// Clone returns a copy that shares no slices with the original.
func (p Product) Clone() Product {
	out := p
	out.Tags = make([]string, len(p.Tags))
	copy(out.Tags, p.Tags)
	return out
}
