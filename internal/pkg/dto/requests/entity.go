package requests

// EntityForm holds raw form values keyed by column name.
type EntityForm map[string]interface{}
