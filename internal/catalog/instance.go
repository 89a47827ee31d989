package catalog

// Instance is one entity row fetched for the duration of a single query.
// Values are keyed by storage column name.
type Instance struct {
	model  *Model
	values map[string]interface{}
}

// NewInstance wraps a scanned row for the given model.
func NewInstance(model *Model, values map[string]interface{}) *Instance {
	if values == nil {
		values = make(map[string]interface{})
	}
	return &Instance{model: model, values: values}
}

// Model returns the entity model this instance belongs to.
func (i *Instance) Model() *Model {
	return i.model
}

// Get returns the value of a column by its storage name.
func (i *Instance) Get(column string) interface{} {
	return i.values[column]
}

// ID returns the instance's primary key value.
func (i *Instance) ID() interface{} {
	return i.values["id"]
}
