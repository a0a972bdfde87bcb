// Package export renders a packing result to a portrait A4 packing-slip
// PDF and to a sheet of QR-coded parcel labels. There is no coordinate
// layout to draw — parcels carry no item positions — so the PDF lists
// each parcel's contents as an itemized table rather than a placement
// diagram.
package export
