// Package domain contains the core entities shared by the scanning pipeline:
// decoded codes and their classification, product records returned by lookup
// providers, lookup outcomes, async lookup jobs and scan session state. The
// types are free of infrastructure concerns so every layer can use them.
package domain
