// Package outlier finds the least central member of a word group: the token
// whose vector points furthest from the group's mean direction.
package outlier
