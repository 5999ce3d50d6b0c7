/*
Package catalog provides the service facade and the category
projection.

# Service

Service is what handlers talk to. Commands delegate to the store after
any needed normalization; queries read through it. The facade adds no
error kinds of its own.

# Categories

Categories are never stored. ProjectCategories derives them on read
from the leading whitespace-delimited token of each paper name, so
"G-Print 100" and "G-Print 170" group under "G-Print" and "Magno
Volume" under "Magno".
*/
package catalog
