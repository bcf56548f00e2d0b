// Package asset imports simple 3D mesh formats into an in-memory Scene.
//
// The Importer owns the scene it returns; the scene stays valid until the
// next import or FreeScene. ASCII PLY and Wavefront OBJ are supported.
// Readers produce one vertex per face corner; the JoinIdenticalVertices
// post-process step merges them back into an indexed mesh.
package asset
