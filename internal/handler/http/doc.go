// Package http implements the two HTTP surfaces of the privacy node.
//
// The node interface carries peer traffic: pushes of encrypted payloads and
// privacy group records, and party info exchange. The client interface is
// used by the local application to distribute and retrieve payloads and to
// manage privacy groups. Both share request tracing, access logging and
// error mapping middleware; transport security is applied by the server.
package http
