package ipresolver

import (
	"blinkgate.io/infrastructure/ipresolver/maxmind"
	"blinkgate.io/infrastructure/ipresolver/types"
)

var IPResolverInstance types.IPResolver = &maxmind.MaxMindIPResolver{}

func InitialiseIPResolver() {
	resolver, ok := IPResolverInstance.(*maxmind.MaxMindIPResolver)
	if ok {
		resolver.ConnectToDB()
	}
}
