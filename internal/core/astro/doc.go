// Package astro derives calendar-based astrological attributes from a date.
//
// Everything here is calendar arithmetic, not ephemeris: the lunar
// mansion is a day-of-year modulus and the lunar phase is a day-of-month
// quartile. All functions are pure and total.
package astro
