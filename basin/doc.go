// Package basin re-expresses global flow distances relative to a chosen
// basin outlet under an externally supplied watershed mask.
//
// What:
//
//   - Relative subtracts the outlet's own flow distance from every node
//     inside the mask and writes exact zeros outside it, turning global
//     to-outlet distances into basin-relative ones.
//
// Why:
//
//   - Flow distance is computed globally (one value per grid node, measured
//     to whatever terminal node each chain drains to). Basin analyses want
//     distances measured from a specific outlet, and exactly zero — not
//     leftover values — outside the basin.
//
// The watershed mask is consumed, never computed: producing it is the job of
// an external watershed-extraction collaborator.
//
// Complexity:
//
//   - Relative: O(N) time, O(N) memory for the fresh output.
//
// Errors:
//
//   - ErrMaskLength: mask and distance array differ in length.
//   - ErrOutletRange: outlet index outside [0, N).
//   - ErrOutletOutsideMask: the chosen outlet is not a member of the mask.
package basin
