// Package theme handles palette loading and hot-reload for ctxmenu.
// It supports loading themes from ~/.config/ctxmenu/themes/ and provides
// embedded bundled themes for use when no custom theme is configured.
package theme
