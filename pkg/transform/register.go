package transform

import (
	"fmt"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/config"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/registry"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

func init() {
	err := registry.RegisterTransformerFactory(TransformerName,
		func(cfgMap map[string]interface{}, store types.AspectStore) (types.Transformer, error) {
			cfg, err := config.FromMap(cfgMap)
			if err != nil {
				return nil, err
			}
			return New(cfg, store)
		})
	if err != nil {
		panic(fmt.Sprintf("failed to register %s factory: %v", TransformerName, err))
	}
}
