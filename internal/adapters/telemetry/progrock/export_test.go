package progrock

var VertexDigest = vertexDigest
