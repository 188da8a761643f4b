package registry

import (
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// Global registry of transformer factories. Transform packages register
// themselves via init so that recipes can name them by type.
var transformerFactoryRegistry Registry[types.TransformerFactory]

func init() {
	transformerFactoryRegistry = New[types.TransformerFactory]()
}

// RegisterTransformerFactory registers a factory function for creating transformers
func RegisterTransformerFactory(name string, factory types.TransformerFactory) error {
	return transformerFactoryRegistry.Register(name, factory)
}

// GetTransformerFactory retrieves a transformer factory by name
func GetTransformerFactory(name string) (types.TransformerFactory, error) {
	factory, err := transformerFactoryRegistry.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "transformer factory not found: %s", name)
	}
	return factory, nil
}

// TransformerFactories returns the names of all registered transformer factories
func TransformerFactories() []string {
	return transformerFactoryRegistry.List()
}
