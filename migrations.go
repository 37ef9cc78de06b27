// Package qrscanner embeds the assets shared by the commands and tests of the module.
package qrscanner

import "embed"

// MigrationsDir is the directory inside Migrations that holds goose files.
const MigrationsDir = "migrations"

// Migrations holds the goose SQL migrations of the application tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS
