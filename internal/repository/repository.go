// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch and persist users and
// exercises, abstracting SQL logic away from the service layer. Every
// user-scoped operation runs the existence guard first.
package repository
