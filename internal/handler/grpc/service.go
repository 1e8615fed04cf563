// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/models"
	grpclib "google.golang.org/grpc"
)

const ServiceName = "certregistry.v1.CertificateRegistry"

// Full method names.
const (
	VerifyMethod               = "/" + ServiceName + "/Verify"
	GetCertificateMethod       = "/" + ServiceName + "/GetCertificate"
	ListUserCertificatesMethod = "/" + ServiceName + "/ListUserCertificates"
)

type VerifyRequest struct {
	Code string `json:"code"`
}

type GetCertificateRequest struct {
	ID string `json:"id"`
}

type ListUserCertificatesRequest struct {
	UserID string `json:"user_id"`
}

// CertificateRegistryServer is the server API of the registry service.
type CertificateRegistryServer interface {
	Verify(ctx context.Context, req *VerifyRequest) (*models.VerificationResult, error)
	GetCertificate(ctx context.Context, req *GetCertificateRequest) (*models.CertificateResponse, error)
	ListUserCertificates(ctx context.Context, req *ListUserCertificatesRequest) (*models.CertificateListResponse, error)
}

// ServiceDesc describes the registry service for grpc.Server.RegisterService.
var ServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CertificateRegistryServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Verify", Handler: verifyHandler},
		{MethodName: "GetCertificate", Handler: getCertificateHandler},
		{MethodName: "ListUserCertificates", Handler: listUserCertificatesHandler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "certregistry/v1/registry.json",
}

func verifyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(VerifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CertificateRegistryServer).Verify(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: VerifyMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CertificateRegistryServer).Verify(ctx, req.(*VerifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getCertificateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(GetCertificateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CertificateRegistryServer).GetCertificate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: GetCertificateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CertificateRegistryServer).GetCertificate(ctx, req.(*GetCertificateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listUserCertificatesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(ListUserCertificatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CertificateRegistryServer).ListUserCertificates(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: ListUserCertificatesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CertificateRegistryServer).ListUserCertificates(ctx, req.(*ListUserCertificatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Client is a typed client of the registry service.
type Client struct {
	conn grpclib.ClientConnInterface
}

func NewClient(conn grpclib.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) Verify(ctx context.Context, code string, opts ...grpclib.CallOption) (*models.VerificationResult, error) {
	out := new(models.VerificationResult)
	if err := c.invoke(ctx, VerifyMethod, &VerifyRequest{Code: code}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCertificate(ctx context.Context, id string, opts ...grpclib.CallOption) (*models.CertificateResponse, error) {
	out := new(models.CertificateResponse)
	if err := c.invoke(ctx, GetCertificateMethod, &GetCertificateRequest{ID: id}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUserCertificates(ctx context.Context, userID string, opts ...grpclib.CallOption) (*models.CertificateListResponse, error) {
	out := new(models.CertificateListResponse)
	if err := c.invoke(ctx, ListUserCertificatesMethod, &ListUserCertificatesRequest{UserID: userID}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) invoke(ctx context.Context, method string, in, out any, opts []grpclib.CallOption) error {
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(CodecName)}, opts...)
	return c.conn.Invoke(ctx, method, in, out, opts...)
}
