package web

import "embed"

// ContentFS holds the page template and its static assets.
//
//go:embed templates/* static/*
var ContentFS embed.FS
