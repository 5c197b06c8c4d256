package shopctx

// Shared Locals keys used across controllers and middlewares
const (
	KeyShopContext = "SHOP_CONTEXT"
	KeyShopDomain  = "shop_domain"
)
